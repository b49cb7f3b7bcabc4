package render

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrOffscreen reports a draw at a non-positive terminal coordinate
	ErrOffscreen = errors.New("draw outside the screen")

	// ErrInvalidRune reports a glyph that cannot be UTF-8 encoded
	ErrInvalidRune = errors.New("invalid rune")
)

// frameCapacity is the initial buffer size; frames grow as needed and keep their capacity
const frameCapacity = 32 * 1024

// Frame accumulates one rendered frame of ANSI output for a single write
// The first formatting error is kept and all later drawing is ignored
type Frame struct {
	buf []byte
	err error
}

// NewFrame creates an empty frame
func NewFrame() *Frame {
	return &Frame{buf: make([]byte, 0, frameCapacity)}
}

// Begin discards the previous frame and starts a new one with a hidden cursor on a cleared screen
func (f *Frame) Begin() {
	f.buf = f.buf[:0]
	f.err = nil
	f.buf = append(f.buf, csiCursorHide...)
	f.buf = append(f.buf, csiClear...)
}

// Bytes returns the encoded frame, valid until the next Begin
func (f *Frame) Bytes() []byte {
	return f.buf
}

// Err returns the first formatting error of the frame
func (f *Frame) Err() error {
	return f.err
}

// MoveTo positions the cursor
func (f *Frame) MoveTo(col, row int) {
	if f.err != nil {
		return
	}
	if col < 1 || row < 1 {
		f.err = fmt.Errorf("%w: (%d,%d)", ErrOffscreen, col, row)
		return
	}
	f.buf = appendCursorPos(f.buf, col, row)
}

// Fg selects a palette foreground color
func (f *Frame) Fg(id uint8) {
	if f.err == nil {
		f.buf = appendFg(f.buf, id)
	}
}

// Bg selects a palette background color
func (f *Frame) Bg(id uint8) {
	if f.err == nil {
		f.buf = appendBg(f.buf, id)
	}
}

// ResetStyle restores default colors
func (f *Frame) ResetStyle() {
	if f.err == nil {
		f.buf = append(f.buf, csiReset...)
	}
}

// SetCell draws one glyph with its own colors, then resets the style
func (f *Frame) SetCell(col, row int, r rune, fg, bg Color) {
	if f.err != nil {
		return
	}
	if !utf8.ValidRune(r) {
		f.err = fmt.Errorf("%w: %U at (%d,%d)", ErrInvalidRune, r, col, row)
		return
	}
	f.MoveTo(col, row)
	f.style(fg, bg)
	if f.err == nil {
		f.buf = utf8.AppendRune(f.buf, r)
	}
	f.ResetStyle()
}

// DrawText writes s starting at (col, row) in fg
func (f *Frame) DrawText(col, row int, s string, fg Color) {
	if f.err != nil {
		return
	}
	if !utf8.ValidString(s) {
		f.err = fmt.Errorf("%w: text at (%d,%d)", ErrInvalidRune, col, row)
		return
	}
	f.MoveTo(col, row)
	f.style(fg, ColorDefault)
	if f.err == nil {
		f.buf = append(f.buf, s...)
	}
	f.ResetStyle()
}

func (f *Frame) style(fg, bg Color) {
	if !fg.IsDefault() {
		f.Fg(uint8(fg))
	}
	if !bg.IsDefault() {
		f.Bg(uint8(bg))
	}
}
