package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/render"
)

// TcellScreen is the alternative backend: drawing and input go through tcell
// It satisfies render.Surface; coordinates stay 1-based like the ANSI frame
type TcellScreen struct {
	screen  tcell.Screen
	eventCh chan Event
}

// NewTcellScreen creates an uninitialized tcell backend
func NewTcellScreen() (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TcellScreen{
		screen:  screen,
		eventCh: make(chan Event, parameter.InputQueueSize),
	}, nil
}

// Init enters tcell's screen mode and starts the event pump
func (s *TcellScreen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.HideCursor()
	s.screen.Clear()

	Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				s.send(Event{Type: EventClosed})
				return
			}
			if out, ok := translateTcellEvent(ev); ok {
				s.send(out)
			}
		}
	})
	return nil
}

// Fini restores the terminal; PollEvent then returns nil and the pump exits
func (s *TcellScreen) Fini() {
	s.screen.Fini()
}

// Size returns the screen dimensions
func (s *TcellScreen) Size() (int, int) {
	return s.screen.Size()
}

// Events delivers translated key and resize events
func (s *TcellScreen) Events() <-chan Event {
	return s.eventCh
}

// Begin clears the back buffer for a new frame
func (s *TcellScreen) Begin() {
	s.screen.Clear()
}

// SetCell implements render.Surface
func (s *TcellScreen) SetCell(col, row int, r rune, fg, bg render.Color) {
	s.screen.SetContent(col-1, row-1, r, nil, tcellStyle(fg, bg))
}

// DrawText implements render.Surface
func (s *TcellScreen) DrawText(col, row int, text string, fg render.Color) {
	style := tcellStyle(fg, render.ColorDefault)
	x := col - 1
	for _, r := range text {
		s.screen.SetContent(x, row-1, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
}

// Flush shows the frame; tcell reports no write errors
func (s *TcellScreen) Flush() error {
	s.screen.Show()
	return nil
}

func (s *TcellScreen) send(ev Event) {
	select {
	case s.eventCh <- ev:
	default:
	}
}

func tcellStyle(fg, bg render.Color) tcell.Style {
	style := tcell.StyleDefault
	if !fg.IsDefault() {
		style = style.Foreground(tcell.PaletteColor(int(fg)))
	}
	if !bg.IsDefault() {
		style = style.Background(tcell.PaletteColor(int(bg)))
	}
	return style
}

// translateTcellEvent maps tcell events onto the package's Event
func translateTcellEvent(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
		case tcell.KeyUp:
			return Event{Type: EventKey, Key: KeyUp}, true
		case tcell.KeyDown:
			return Event{Type: EventKey, Key: KeyDown}, true
		case tcell.KeyLeft:
			return Event{Type: EventKey, Key: KeyLeft}, true
		case tcell.KeyRight:
			return Event{Type: EventKey, Key: KeyRight}, true
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEscape}, true
		case tcell.KeyEnter:
			return Event{Type: EventKey, Key: KeyEnter}, true
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}, true
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
