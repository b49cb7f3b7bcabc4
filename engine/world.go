package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/vmath"
)

// PlayerIndex is the slot of the keyboard-driven snake
const PlayerIndex = 0

// WorldConfig holds the startup parameters of a world
type WorldConfig struct {
	Agents int // including the player; 0 selects the default
	Seed   uint64
	Arena  Arena
	Clock  TimeProvider
}

// World is the complete simulation state, owned by the game loop
type World struct {
	Arena   Arena
	Snakes  []*component.Snake
	Food    []component.Food
	Rng     *vmath.FastRand
	Clock   TimeProvider
	Events  *EventQueue
	Session uuid.UUID

	// Tick counts simulation steps of any agent
	Tick uint64
}

// NewWorld creates the player, the AI agents and one food of each effect at random positions
func NewWorld(cfg WorldConfig) *World {
	if cfg.Agents <= 0 {
		cfg.Agents = parameter.DefaultAgentCount
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Arena.Size.X == 0 || cfg.Arena.Size.Y == 0 {
		cfg.Arena = DefaultArena()
	}

	w := &World{
		Arena:   cfg.Arena,
		Rng:     vmath.NewFastRand(cfg.Seed),
		Clock:   cfg.Clock,
		Events:  NewEventQueue(),
		Session: uuid.New(),
	}

	now := w.Now()
	names := w.shuffledNames()
	w.Snakes = make([]*component.Snake, cfg.Agents)
	for i := range w.Snakes {
		strategy := component.StrategyPlayer
		name := "Player"
		if i != PlayerIndex {
			strategy = component.AgentStrategyFromIndex(w.Rng.Intn(1 << 16))
			name = names[(i-1)%len(names)]
		}
		w.Snakes[i] = component.NewSnake(name, strategy, parameter.InitialSnakeLength,
			w.RandomPoint(), w.Rng.RandomDirection(), now)
	}

	w.Food = make([]component.Food, component.EffectCount)
	for i := range w.Food {
		w.Food[i] = component.NewFood(component.Effect(i), w.RandomPoint())
	}
	return w
}

// Now returns the simulation time
func (w *World) Now() time.Time {
	return w.Clock.Now()
}

// RandomPoint returns a uniformly chosen cell inside the arena
func (w *World) RandomPoint() core.Point {
	return w.Rng.RandomPoint(w.Arena.Size)
}

// Player returns the keyboard-driven snake
func (w *World) Player() *component.Snake {
	return w.Snakes[PlayerIndex]
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(ev Event) {
	ev.Tick = w.Tick
	w.Events.Push(ev)
}

func (w *World) shuffledNames() []string {
	names := make([]string, len(parameter.SnakeNames))
	copy(names, parameter.SnakeNames)
	for i := len(names) - 1; i > 0; i-- {
		j := w.Rng.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	return names
}
