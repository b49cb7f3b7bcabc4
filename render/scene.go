package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/parameter"
)

// HUD is the presentation state drawn around the arena
type HUD struct {
	ShowFPS bool
	FPS     int
	Key     string
	Paused  bool

	// Debug lines are drawn under the scoreboard when non-empty
	Debug []string
}

// Scene draws a whole frame: border, food, snakes, status line, scoreboard and overlay
type Scene struct {
	comp *Compositor
}

func NewScene() *Scene {
	return &Scene{comp: NewCompositor()}
}

// Draw renders w and hud onto surf
func (sc *Scene) Draw(surf Surface, w *engine.World, hud HUD) {
	arena := &w.Arena
	now := w.Now()

	DrawBorder(surf, arena)
	for _, f := range w.Food {
		col, row := arena.WorldToScreen(f.Position)
		surf.SetCell(col, row, f.Shape, Palette(f.Color), ColorDefault)
	}
	for _, s := range w.Snakes {
		sc.comp.DrawSnake(surf, arena, s, s.IsCannibal(now))
	}
	sc.comp.Reset()

	DrawStatus(surf, arena, w, hud)
	rows := DrawScoreboard(surf, arena, w)
	drawLines(surf, arena, rows+1, hud.Debug, parameter.ColorDebug)
}

// DrawBorder draws the box around the arena interior
func DrawBorder(surf Surface, a *engine.Arena) {
	x, y := int(a.Position.X), int(a.Position.Y)
	w, h := int(a.Size.X), int(a.Size.Y)
	fg := Palette(parameter.ColorBorder)
	horiz := strings.Repeat(string(parameter.GlyphHoriz), w)

	surf.DrawText(x, y, string(parameter.GlyphCornerTL)+horiz+string(parameter.GlyphCornerTR), fg)
	for r := 1; r <= h; r++ {
		surf.SetCell(x, y+r, parameter.GlyphVert, fg, ColorDefault)
		surf.SetCell(x+w+1, y+r, parameter.GlyphVert, fg, ColorDefault)
	}
	surf.DrawText(x, y+h+1, string(parameter.GlyphCornerBL)+horiz+string(parameter.GlyphCornerBR), fg)
}

// StatusLine formats the player summary shown above the arena
func StatusLine(w *engine.World, hud HUD) string {
	var b strings.Builder
	if hud.ShowFPS {
		fmt.Fprintf(&b, "%d FPS | ", hud.FPS)
	}
	p := w.Player()
	fmt.Fprintf(&b, "SPEED: %d/%d | SIZE: %d | KEY: %s", p.Speed(), parameter.MaxDelay, p.Len(), hud.Key)
	if hud.Paused {
		b.WriteString(" | PAUSED")
	}
	return b.String()
}

// DrawStatus draws the status line one row above the border
func DrawStatus(surf Surface, a *engine.Arena, w *engine.World, hud HUD) {
	surf.DrawText(int(a.Position.X), int(a.Position.Y)-1, StatusLine(w, hud), Palette(parameter.ColorStatus))
}

// DrawScoreboard lists every snake right of the arena and returns the rows used
// Markers: '*' cannibal, '+' dying
func DrawScoreboard(surf Surface, a *engine.Arena, w *engine.World) int {
	now := w.Now()
	col := scoreboardColumn(a)
	for i, s := range w.Snakes {
		mark := ' '
		switch {
		case !s.Alive:
			mark = '+'
		case s.IsCannibal(now):
			mark = '*'
		}
		line := fmt.Sprintf("%c%-10.10s %3d", mark, s.Name, s.Len())
		surf.DrawText(col, int(a.Position.Y)+i, line, Palette(s.Color))
	}
	return len(w.Snakes)
}

func drawLines(surf Surface, a *engine.Arena, offset int, lines []string, color uint8) {
	col := scoreboardColumn(a)
	for i, line := range lines {
		surf.DrawText(col, int(a.Position.Y)+offset+i, line, Palette(color))
	}
}

func scoreboardColumn(a *engine.Arena) int {
	return int(a.Position.X) + int(a.Size.X) + 3
}
