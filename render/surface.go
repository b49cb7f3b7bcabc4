package render

// Color is a 256-color palette index, or ColorDefault for the terminal's own color
type Color int16

// ColorDefault leaves the terminal color unchanged
const ColorDefault Color = -1

// Palette converts a 256-color palette id
func Palette(id uint8) Color {
	return Color(id)
}

// IsDefault reports whether c selects the terminal default
func (c Color) IsDefault() bool {
	return c < 0
}

// Surface receives one frame of drawing; coordinates are 1-based terminal column and row
type Surface interface {
	SetCell(col, row int, r rune, fg, bg Color)
	DrawText(col, row int, s string, fg Color)
}
