package engine

import (
	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/parameter"
)

// Arena is the playfield rectangle inside the terminal
// Position is the top-left border cell (1-based terminal column, row)
// Size is the interior in columns and physical rows; logical height is Size.Y*2
type Arena struct {
	Position core.Point
	Size     core.Point
}

// NewArena creates an arena with the given border position and interior size
func NewArena(x, y, w, h uint8) Arena {
	return Arena{
		Position: core.NewPoint(x, y),
		Size:     core.NewPoint(w, h),
	}
}

// DefaultArena returns the startup geometry
func DefaultArena() Arena {
	return NewArena(parameter.ArenaDefaultX, parameter.ArenaDefaultY,
		parameter.ArenaDefaultWidth, parameter.ArenaDefaultHeight)
}

// Resize sets the interior size without validation
func (a *Arena) Resize(w, h uint8) {
	a.Size = core.NewPoint(w, h)
}

// Move sets the border position without validation
func (a *Arena) Move(x, y uint8) {
	a.Position = core.NewPoint(x, y)
}

// MoveBy shifts the border by (dx, dy), saturating at the minimum offsets and the byte range
func (a *Arena) MoveBy(dx, dy int) {
	a.Position.X = uint8(min(max(int(a.Position.X)+dx, parameter.ArenaMinOffsetX), 255))
	a.Position.Y = uint8(min(max(int(a.Position.Y)+dy, parameter.ArenaMinOffsetY), 255))
}

// ResizeBy grows or shrinks the interior by (dw, dh) within the size limits
// Shrinking pulls outlying food back in the same way Fit does
func (a *Arena) ResizeBy(dw, dh int, food []component.Food) {
	switch {
	case dw > 0:
		a.Size.X = uint8(min(int(a.Size.X)+dw, parameter.ArenaMaxWidth))
	case dw < 0:
		a.shrinkWidth(-dw, food)
	}
	switch {
	case dh > 0:
		a.Size.Y = uint8(min(int(a.Size.Y)+dh, parameter.ArenaMaxHeight))
	case dh < 0:
		a.shrinkHeight(-dh, food)
	}
}

// Width is the logical column count
func (a *Arena) Width() int {
	return int(a.Size.X)
}

// LogicalHeight is the half-cell row count
func (a *Arena) LogicalHeight() int {
	return int(a.Size.Y) * 2
}

// Contains reports whether p lies in the logical interior
func (a *Arena) Contains(p core.Point) bool {
	return int(p.X) < a.Width() && int(p.Y) < a.LogicalHeight()
}

// Fit slides and, if needed, shrinks the arena to keep it and its padding inside viewport
// Food left outside a shrunk interior is pulled back in
func (a *Arena) Fit(viewport core.Point, food []component.Food) {
	if over := int(a.Position.X) + int(a.Size.X) + parameter.ArenaPaddingX - int(viewport.X); over > 0 {
		slack := satSub(int(a.Position.X), parameter.ArenaMinOffsetX)
		shrink := satSub(over, slack)
		a.Position.X = uint8(satSub(int(a.Position.X), over))
		if shrink != 0 {
			a.shrinkWidth(shrink, food)
		}
	}
	if over := int(a.Position.Y) + int(a.Size.Y) + parameter.ArenaPaddingY - int(viewport.Y); over > 0 {
		slack := satSub(int(a.Position.Y), parameter.ArenaMinOffsetY)
		shrink := satSub(over, slack)
		a.Position.Y = uint8(satSub(int(a.Position.Y), over))
		if shrink != 0 {
			a.shrinkHeight(shrink, food)
		}
	}

	if a.Position.X < parameter.ArenaMinOffsetX {
		a.Position.X = parameter.ArenaMinOffsetX
	}
	if a.Position.Y < parameter.ArenaMinOffsetY {
		a.Position.Y = parameter.ArenaMinOffsetY
	}
}

func (a *Arena) shrinkWidth(n int, food []component.Food) {
	a.Size.X = uint8(max(parameter.ArenaMinSize, satSub(int(a.Size.X), n)))
	limit := a.Size.X - 2
	for i := range food {
		if food[i].Position.X > limit {
			food[i].Position.X = limit
		}
	}
}

func (a *Arena) shrinkHeight(n int, food []component.Food) {
	a.Size.Y = uint8(max(parameter.ArenaMinSize, satSub(int(a.Size.Y), n)))
	limit := (a.Size.Y - 1) * 2
	for i := range food {
		if food[i].Position.Y > limit {
			food[i].Position.Y = limit
		}
	}
}

// WorldToScreen maps a logical cell to its 1-based terminal column and row
// Two logical rows share one terminal row; the +2 bias skips the top border
func (a *Arena) WorldToScreen(p core.Point) (col, row int) {
	return int(p.X) + int(a.Position.X) + 1, ((int(p.Y) + 2) >> 1) + int(a.Position.Y)
}

// satSub is saturating subtraction floored at zero
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}
