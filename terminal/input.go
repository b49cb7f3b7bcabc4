package terminal

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/serpent/parameter"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

// inputReader turns raw stdin bytes into events on a buffered channel
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once

	// Persistent buffer for sequences split across reads
	buf []byte
}

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend: backend,
		eventCh: make(chan Event, parameter.InputQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 64),
	}
}

func (r *inputReader) start() {
	Go(r.readLoop)
}

// stop signals the reader and waits briefly for it to exit
func (r *inputReader) stop() {
	r.once.Do(func() {
		close(r.stopCh)
		select {
		case <-r.doneCh:
		case <-time.After(100 * time.Millisecond):
			// Reader stuck on blocking read, proceed anyway
		}
	})
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	for {
		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendFinal(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			// Poll timeout: a lone ESC that got no follow-up is a real Escape
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(Event{Type: EventKey, Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			select {
			case <-r.stopCh:
				r.sendFinal(Event{Type: EventClosed})
				return
			default:
				continue
			}
		}

		r.buf = append(r.buf, data...)
		consumed := parseInput(r.buf, r.send)
		r.buf = r.buf[:copy(r.buf, r.buf[consumed:])]
	}
}

// send delivers without blocking; a full queue drops the event
func (r *inputReader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	default:
	}
}

// sendFinal delivers the reader's last event, waiting for room until stop
func (r *inputReader) sendFinal(ev Event) {
	select {
	case r.eventCh <- ev:
		return
	default:
	}
	select {
	case r.eventCh <- ev:
	case <-r.stopCh:
	}
}

// parseInput emits events for complete keys in data and returns the bytes consumed
// Parsing stops at an incomplete escape or UTF-8 sequence
func parseInput(data []byte, emit func(Event)) int {
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b >= 0x20 && b < 0x7f:
			emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			n, ev := parseEscape(data[i:])
			if n == 0 {
				return i
			}
			if ev.Key != KeyNone {
				emit(ev)
			}
			i += n

		case b == 0x03:
			emit(Event{Type: EventKey, Key: KeyCtrlC})
			i++

		case b == '\r' || b == '\n':
			emit(Event{Type: EventKey, Key: KeyEnter})
			i++

		case b == 0x7f || b == 0x08:
			emit(Event{Type: EventKey, Key: KeyBackspace})
			i++

		case b >= 0x80:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			if rn != utf8.RuneError {
				emit(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			}
			i += size

		default:
			// Other control bytes carry no binding
			i++
		}
	}
	return i
}

// parseEscape parses a sequence starting with ESC; 0 means incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch data[1] {
	case 0x1b:
		return 1, Event{Type: EventKey, Key: KeyEscape}
	case '[':
		return parseCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, Event{}
		}
		return 3, Event{Type: EventKey, Key: csiKeys[data[2]]}
	}

	// Alt+key: drop the ESC so the key itself is delivered next
	return 1, Event{}
}

// parseCSI scans ESC [ params final; unknown sequences are consumed as KeyNone
func parseCSI(data []byte) (int, Event) {
	const maxScan = 16
	for end := 2; end < len(data) && end < maxScan; end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			key := KeyNone
			if end == 2 {
				key = csiKeys[b]
			}
			return end + 1, Event{Type: EventKey, Key: key}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed, drop the introducer only
			return 2, Event{}
		}
	}
	if len(data) >= maxScan {
		return maxScan, Event{}
	}
	return 0, Event{}
}
