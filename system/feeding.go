package system

import (
	"time"

	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/vmath"
)

// relocateAttempts bounds re-rolls that avoid dropping food back on its old cell
const relocateAttempts = 8

// Eat consumes at most one thing under the head of snake idx and reports whether it did
// Food is checked first in board order; otherwise a cannibal eats a rival's tail
func Eat(w *engine.World, idx int) bool {
	s := w.Snakes[idx]
	now := w.Now()
	head := s.Head()

	for i := range w.Food {
		if w.Food[i].Position != head {
			continue
		}
		ApplyEffect(s, w.Food[i], now)
		w.Emit(engine.Event{Type: engine.EventEat, Snake: idx, Other: NoKiller, Effect: w.Food[i].Effect, Amount: w.Food[i].Growth()})
		RelocateFood(w, i)
		return true
	}

	if !s.IsCannibal(now) {
		return false
	}
	for i, other := range w.Snakes {
		if i == idx {
			continue
		}
		if head == other.Tail() && other.ShedTail() {
			s.Grow(parameter.CannibalFeedGrowth, head)
			s.ActivateCannibal(now)
			w.Emit(engine.Event{Type: engine.EventCannibalFeed, Snake: idx, Other: i, Amount: parameter.CannibalFeedGrowth})
			return true
		}
	}
	return false
}

// ApplyEffect grants f's power to s and grows it at the head
func ApplyEffect(s *component.Snake, f component.Food, now time.Time) {
	switch f.Effect {
	case component.EffectSpeed:
		s.AddSpeed(parameter.SpeedBoostAmount)
	case component.EffectCannibal:
		s.ActivateCannibal(now)
	}
	s.Grow(f.Growth(), s.Head())
}

// RelocateFood moves food i to a fresh random cell, preferring one other than its current cell
func RelocateFood(w *engine.World, i int) {
	old := w.Food[i].Position
	p := w.RandomPoint()
	for n := 1; p == old && n < relocateAttempts; n++ {
		p = w.RandomPoint()
	}
	w.Food[i].Position = p
}

// LocateFood returns the position of the food with effect nearest to from
func LocateFood(food []component.Food, from core.Point, effect component.Effect) (core.Point, bool) {
	best, found := core.Point{}, false
	bestDist := 0
	for _, f := range food {
		if f.Effect != effect {
			continue
		}
		if d := vmath.QuickDistance(from, f.Position); !found || d < bestDist {
			best, bestDist, found = f.Position, d, true
		}
	}
	return best, found
}

// NearestFood returns the position of the food of any kind nearest to from
func NearestFood(food []component.Food, from core.Point) (core.Point, bool) {
	best, found := core.Point{}, false
	bestDist := 0
	for _, f := range food {
		if d := vmath.QuickDistance(from, f.Position); !found || d < bestDist {
			best, bestDist, found = f.Position, d, true
		}
	}
	return best, found
}
