package system

import (
	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/vmath"
)

// FindTarget picks the cell AI snake idx steers toward; false for the player or an empty board
func FindTarget(w *engine.World, idx int) (core.Point, bool) {
	s := w.Snakes[idx]
	if s.Strategy == component.StrategyPlayer {
		return core.Point{}, false
	}

	cannibal := s.IsCannibal(w.Now())
	if cannibal {
		if tail, ok := nearestPreyTail(w, idx); ok {
			return tail, true
		}
	}

	head := s.Head()
	switch s.Strategy {
	case component.StrategySpeed:
		return LocateFood(w.Food, head, component.EffectSpeed)
	case component.StrategyScore:
		return LocateFood(w.Food, head, component.EffectNourish)
	case component.StrategyEat:
		return NearestFood(w.Food, head)
	case component.StrategyKill:
		if victim, ok := longestSlowRival(w, idx); ok {
			return w.Snakes[victim].Head(), true
		}
		return LocateFood(w.Food, head, component.EffectSpeed)
	case component.StrategyCannibal:
		if cannibal {
			return LocateFood(w.Food, head, component.EffectSpeed)
		}
		return LocateFood(w.Food, head, component.EffectCannibal)
	}
	return core.Point{}, false
}

// nearestPreyTail finds the slower rival tail closest to idx's own tail
func nearestPreyTail(w *engine.World, idx int) (core.Point, bool) {
	s := w.Snakes[idx]
	from := s.Tail()

	best, found := core.Point{}, false
	bestDist := 0
	for i, other := range w.Snakes {
		if i == idx || !slowerBy(s, other, parameter.CannibalHuntMargin) || other.Len() <= parameter.MinSnakeLength {
			continue
		}
		tail := other.Tail()
		if d := vmath.QuickDistance(from, tail); !found || d < bestDist {
			best, bestDist, found = tail, d, true
		}
	}
	return best, found
}

// longestSlowRival finds the longest rival well slower than idx; ties go to the later index
func longestSlowRival(w *engine.World, idx int) (int, bool) {
	s := w.Snakes[idx]
	victim := -1
	for i, other := range w.Snakes {
		if i == idx || !slowerBy(s, other, parameter.KillHuntMargin) {
			continue
		}
		if victim < 0 || other.Len() >= w.Snakes[victim].Len() {
			victim = i
		}
	}
	return victim, victim >= 0
}

// slowerBy reports whether other's delay exceeds s's by more than margin
func slowerBy(s, other *component.Snake, margin int) bool {
	return int(s.Delay)+margin < int(other.Delay)
}

// Seek turns snake idx toward target along the first safe heading
// Reversal and headings whose next cell would crash are skipped; with none left the heading is kept
func Seek(w *engine.World, idx int, target core.Point) {
	s := w.Snakes[idx]
	head := s.Head()
	width, height := w.Arena.Width(), w.Arena.LogicalHeight()
	reverse := s.Direction.Inverse()

	for _, d := range vmath.NearestDirections(head, target, w.Arena.Size) {
		if d == reverse {
			continue
		}
		if crash, _ := IsCrash(w, idx, head.Wrapped(d, width, height)); !crash {
			s.Direction = d
			return
		}
	}
}
