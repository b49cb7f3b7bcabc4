package vmath

import (
	"math"

	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// QuickDistance is the Manhattan distance between two grid points
func QuickDistance(a, b core.Point) int {
	return absDiff(int(a.X), int(b.X)) + absDiff(int(a.Y), int(b.Y))
}

// Distance is the truncated Euclidean distance from (x, y) to p
func Distance(x, y int, p core.Point) int {
	dx := float64(int(p.X) - x)
	dy := float64(int(p.Y) - y)
	return int(math.Hypot(dx, dy))
}

// NearestDirections orders the four headings by preference for reaching target
// bounds is the arena size (columns, physical rows)
// The axis whose single step lands closer leads; when that step is still farther than
// about half the arena the inverse leads instead, since wrapping around is shorter
func NearestDirections(from, target, bounds core.Point) [4]core.Direction {
	h := core.DirRight
	if from.X > target.X {
		h = core.DirLeft
	}
	hx, hy := from.Step(h)
	distH := Distance(hx, hy, target)

	v := core.DirDown
	if from.Y > target.Y {
		v = core.DirUp
	}
	vx, vy := from.Step(v)
	distV := Distance(vx, vy, target)

	if distH < distV {
		if distH > (int(bounds.X)+parameter.HorizontalShortcutBias)>>1 {
			return [4]core.Direction{h.Inverse(), h, v, v.Inverse()}
		}
		return [4]core.Direction{h, v, v.Inverse(), h.Inverse()}
	}

	if distV > int(bounds.Y)+parameter.VerticalShortcutBias {
		return [4]core.Direction{v.Inverse(), v, h, h.Inverse()}
	}
	return [4]core.Direction{v, h, h.Inverse(), v.Inverse()}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
