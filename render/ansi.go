package render

import "strconv"

// Escape fragments written into frames
var (
	csi           = []byte("\x1b[")
	csiReset      = []byte("\x1b[0m")
	csiFg256      = []byte("\x1b[38;5;") // followed by N m
	csiBg256      = []byte("\x1b[48;5;") // followed by N m
	csiCursorHide = []byte("\x1b[?25l")
	csiClear      = []byte("\x1b[2J")
)

// appendCursorPos appends ESC[{row};{col}H
func appendCursorPos(b []byte, col, row int) []byte {
	b = append(b, csi...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// appendFg appends ESC[38;5;{id}m
func appendFg(b []byte, id uint8) []byte {
	b = append(b, csiFg256...)
	b = strconv.AppendUint(b, uint64(id), 10)
	return append(b, 'm')
}

// appendBg appends ESC[48;5;{id}m
func appendBg(b []byte, id uint8) []byte {
	b = append(b, csiBg256...)
	b = strconv.AppendUint(b, uint64(id), 10)
	return append(b, 'm')
}
