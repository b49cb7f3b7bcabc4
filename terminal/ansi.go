package terminal

// Control sequences for terminal setup and teardown
var (
	csiSGR0           = []byte("\x1b[0m")
	csiClear          = []byte("\x1b[2J\x1b[H")
	csiRIS            = []byte("\x1bc") // Reset to Initial State (emergency)
	csiCursorHide     = []byte("\x1b[?25l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM off keeps bottom-right writes from scrolling
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)
