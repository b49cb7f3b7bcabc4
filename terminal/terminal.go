package terminal

import (
	"io"
	"os"
	"sync"
)

// Terminal provides raw-mode terminal access
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor and starts input
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Write sends one complete frame
	Write(frame []byte) error

	// Events delivers input and resize events; read it without blocking
	Events() <-chan Event
}

type termImpl struct {
	backend Backend
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal over the platform backend
func New() Terminal {
	return newTerminal(newBackend())
}

func newTerminal(b Backend) *termImpl {
	return &termImpl{
		backend: b,
		input:   newInputReader(b),
	}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.SetResizeHandler(func(w, h int) {
		t.input.send(Event{Type: EventResize, Width: w, Height: h})
	})

	for _, seq := range [][]byte{csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiClear} {
		if err := t.backend.Write(seq); err != nil {
			t.backend.Fini()
			return err
		}
	}

	t.input.start()
	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.input.stop()

	t.backend.Write(csiSGR0)
	t.backend.Write(csiCursorShow)
	t.backend.Write(csiAltScreenExit)
	// Re-enable wrap after leaving the alt screen so the main buffer gets it
	t.backend.Write(csiAutoWrapOn)

	t.backend.Fini()
	t.finalized = true
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) Write(frame []byte) error {
	return t.backend.Write(frame)
}

func (t *termImpl) Events() <-chan Event {
	return t.input.eventCh
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
