package game

import (
	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/render"
	"github.com/lixenwraith/serpent/terminal"
)

// Display is a drawable terminal with its input stream
type Display interface {
	render.Surface

	Init() error
	Fini()
	Size() (width, height int)
	Events() <-chan terminal.Event

	// Begin starts a frame and Flush presents it
	Begin()
	Flush() error
}

// NewDisplay selects the backend named in the render configuration
func NewDisplay(backend string) (Display, error) {
	if backend == config.BackendTcell {
		screen, err := terminal.NewTcellScreen()
		if err != nil {
			return nil, &Error{Kind: ErrIO, Err: err}
		}
		return screen, nil
	}
	return NewANSIDisplay(terminal.New()), nil
}

// ANSIDisplay draws into a render.Frame and writes it to a raw terminal in one call
type ANSIDisplay struct {
	term  terminal.Terminal
	frame *render.Frame
}

func NewANSIDisplay(term terminal.Terminal) *ANSIDisplay {
	return &ANSIDisplay{term: term, frame: render.NewFrame()}
}

func (d *ANSIDisplay) Init() error {
	if err := d.term.Init(); err != nil {
		return &Error{Kind: ErrIO, Err: err}
	}
	return nil
}

func (d *ANSIDisplay) Fini() {
	d.term.Fini()
}

func (d *ANSIDisplay) Size() (int, int) {
	return d.term.Size()
}

func (d *ANSIDisplay) Events() <-chan terminal.Event {
	return d.term.Events()
}

func (d *ANSIDisplay) Begin() {
	d.frame.Begin()
}

func (d *ANSIDisplay) SetCell(col, row int, r rune, fg, bg render.Color) {
	d.frame.SetCell(col, row, r, fg, bg)
}

func (d *ANSIDisplay) DrawText(col, row int, s string, fg render.Color) {
	d.frame.DrawText(col, row, s, fg)
}

// Flush writes the frame unless building it failed
func (d *ANSIDisplay) Flush() error {
	if err := d.frame.Err(); err != nil {
		return &Error{Kind: ErrFormat, Err: err}
	}
	if err := d.term.Write(d.frame.Bytes()); err != nil {
		return &Error{Kind: ErrIO, Err: err}
	}
	return nil
}
