package system

import (
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
)

// Serpentine performs one movement step of snake idx
// Alive: the head advances one wrapped cell unless that crashes, which starts the death animation
// Dying: one tail segment is shed; at minimum length the snake respawns with its length kept
func Serpentine(w *engine.World, idx int) {
	s := w.Snakes[idx]

	if !s.Alive {
		if !s.ShedTail() {
			s.Respawn(w.RandomPoint())
			w.Emit(engine.Event{Type: engine.EventRespawn, Snake: idx, Other: NoKiller, Amount: s.Len()})
		}
		return
	}

	next := s.Head().Wrapped(s.Direction, w.Arena.Width(), w.Arena.LogicalHeight())
	if crash, killer := IsCrash(w, idx, next); crash {
		die(w, idx, killer)
		return
	}
	s.Advance(next)
}

// die marks idx as dying and hands its length to killer
func die(w *engine.World, idx, killer int) {
	s := w.Snakes[idx]
	s.Alive = false
	s.ClearCannibal(w.Now())
	s.Delay = parameter.DyingDelay

	score := s.Len()
	w.Emit(engine.Event{Type: engine.EventDeath, Snake: idx, Other: killer, Amount: score})

	if killer == NoKiller {
		return
	}
	k := w.Snakes[killer]
	k.Grow(score, k.Head())
	w.Emit(engine.Event{Type: engine.EventKill, Snake: killer, Other: idx, Amount: score})
}
