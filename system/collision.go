package system

import (
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
)

// NoKiller marks a crash into the mover's own body
const NoKiller = -1

// IsCrash reports whether the mover idx would hit a body segment at p
// Every snake counts, the mover included; in cannibal mode every tail cell is exempt
// killer is the owner of the hit segment when that is another snake, else NoKiller
func IsCrash(w *engine.World, idx int, p core.Point) (crash bool, killer int) {
	cannibal := w.Snakes[idx].IsCannibal(w.Now())

	for i, s := range w.Snakes {
		tail := s.TailIndex()
		for j, seg := range s.Segments() {
			if cannibal && j == tail {
				continue
			}
			if seg != p {
				continue
			}
			if i != idx {
				return true, i
			}
			return true, NoKiller
		}
	}
	return false, NoKiller
}
