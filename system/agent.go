package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/status"
)

// AgentSystem steps every snake whose movement timer has elapsed
type AgentSystem struct {
	world *engine.World

	// Telemetry
	statAlive   *atomic.Int64
	statLongest *atomic.Int64
	statMoves   *atomic.Int64
}

func NewAgentSystem(world *engine.World, reg *status.Registry) *AgentSystem {
	return &AgentSystem{
		world:       world,
		statAlive:   reg.Ints.Get("agents.alive"),
		statLongest: reg.Ints.Get("agents.longest"),
		statMoves:   reg.Ints.Get("agents.moves"),
	}
}

// Update runs one pass in index order and returns the number of snakes that moved
func (s *AgentSystem) Update() int {
	w := s.world
	now := w.Now()

	moved := 0
	for i := range w.Snakes {
		if UpdateAgent(w, i, now) {
			moved++
		}
	}

	var alive, longest int64
	for _, snake := range w.Snakes {
		if snake.Alive {
			alive++
		}
		longest = max(longest, int64(snake.Len()))
	}
	s.statAlive.Store(alive)
	s.statLongest.Store(longest)
	s.statMoves.Add(int64(moved))
	return moved
}

// UpdateAgent steps snake idx if its own interval elapsed: target and steer, move, then feed
func UpdateAgent(w *engine.World, idx int, now time.Time) bool {
	s := w.Snakes[idx]
	if !s.CanMove(now) {
		return false
	}
	w.Tick++

	if s.Alive && s.Strategy != component.StrategyPlayer {
		if target, ok := FindTarget(w, idx); ok {
			Seek(w, idx, target)
		}
	}

	Serpentine(w, idx)

	if s.Alive {
		Eat(w, idx)
	}
	return true
}
