package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyBackspace: "bs",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyCtrlC:     "^C",
}

// Label is a short printable name of the key in ev, used by the status line
func (ev Event) Label() string {
	if ev.Key == KeyRune {
		if ev.Rune == ' ' {
			return "space"
		}
		return string(ev.Rune)
	}
	if name, ok := keyNames[ev.Key]; ok {
		return name
	}
	return "?"
}

// csiKeys maps the final bytes of CSI/SS3 cursor sequences
var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}
