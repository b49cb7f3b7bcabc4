// Package terminal provides raw-mode terminal access for the simulation.
//
// Features:
//   - Raw stdin input parsing into key events, with arrow key escape sequences
//   - Single-write frame output
//   - SIGWINCH resize tracking
//   - Clean terminal restoration on exit/panic
//   - A tcell-backed alternative screen
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
