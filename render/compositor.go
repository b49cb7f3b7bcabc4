package render

import (
	"github.com/lixenwraith/serpent/component"
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
)

// Compositor merges two half-cells drawn into the same terminal cell within one frame
// pendingTop holds upper halves waiting for their lower sibling, keyed by the sibling's point;
// pendingBottom is the mirror. Both are emptied by Reset at frame end
type Compositor struct {
	pendingTop    map[core.Point]uint8
	pendingBottom map[core.Point]uint8
}

// NewCompositor creates a compositor with empty scratch sets
func NewCompositor() *Compositor {
	return &Compositor{
		pendingTop:    make(map[core.Point]uint8),
		pendingBottom: make(map[core.Point]uint8),
	}
}

// Blend returns the half-block glyph for p and the background to draw it on
// If p's sibling was drawn earlier this frame its color becomes the background;
// otherwise p is recorded for a later sibling and the background stays default
func (c *Compositor) Blend(p core.Point, color uint8) (rune, Color) {
	glyph := rune(parameter.GlyphUpperHalf)
	waiting, record := c.pendingBottom, c.pendingTop
	if !p.IsTop() {
		glyph = parameter.GlyphLowerHalf
		waiting, record = c.pendingTop, c.pendingBottom
	}

	if other, ok := waiting[p]; ok {
		delete(waiting, p)
		return glyph, Palette(other)
	}
	record[p.Sibling()] = color
	return glyph, ColorDefault
}

// DrawSnake draws every segment of s through the compositor
// A cannibal's head is drawn in the cannibal head color; segments left outside a shrunk arena are skipped
func (c *Compositor) DrawSnake(surf Surface, arena *engine.Arena, s *component.Snake, cannibal bool) {
	head := s.HeadIndex()
	for i, p := range s.Segments() {
		if !arena.Contains(p) {
			continue
		}
		glyph, bg := c.Blend(p, s.Color)
		fg := s.Color
		if cannibal && i == head {
			fg = parameter.ColorCannibalHead
		}
		col, row := arena.WorldToScreen(p)
		surf.SetCell(col, row, glyph, Palette(fg), bg)
	}
}

// Pending returns the number of unmatched half-cells
func (c *Compositor) Pending() int {
	return len(c.pendingTop) + len(c.pendingBottom)
}

// Reset empties both scratch sets
func (c *Compositor) Reset() {
	clear(c.pendingTop)
	clear(c.pendingBottom)
}
