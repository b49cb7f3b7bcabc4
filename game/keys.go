package game

import (
	"github.com/lixenwraith/serpent/core"
	"github.com/lixenwraith/serpent/terminal"
)

// Action is what a key does
type Action uint8

const (
	ActionNone Action = iota
	ActionSteer
	ActionMoveArena
	ActionResizeArena
	ActionFaster
	ActionSlower
	ActionToggleFPS
	ActionToggleDebug
	ActionPause
	ActionMute
	ActionQuit
)

// Binding is a resolved key: an action plus its argument
type Binding struct {
	Action Action
	Dir    core.Direction // ActionSteer
	DX, DY int            // ActionMoveArena, ActionResizeArena
}

var runeBindings = map[rune]Binding{
	'w': {Action: ActionSteer, Dir: core.DirUp},
	'a': {Action: ActionSteer, Dir: core.DirLeft},
	's': {Action: ActionSteer, Dir: core.DirDown},
	'd': {Action: ActionSteer, Dir: core.DirRight},

	// Arena size: k/j taller/shorter, l/h wider/narrower
	'k': {Action: ActionResizeArena, DY: 1},
	'j': {Action: ActionResizeArena, DY: -1},
	'l': {Action: ActionResizeArena, DX: 1},
	'h': {Action: ActionResizeArena, DX: -1},

	'+': {Action: ActionFaster},
	'=': {Action: ActionFaster},
	'-': {Action: ActionSlower},
	'f': {Action: ActionToggleFPS},
	'g': {Action: ActionToggleDebug},
	'p': {Action: ActionPause},
	' ': {Action: ActionPause},
	'm': {Action: ActionMute},
	'q': {Action: ActionQuit},
}

var keyBindings = map[terminal.Key]Binding{
	terminal.KeyUp:    {Action: ActionMoveArena, DY: -1},
	terminal.KeyDown:  {Action: ActionMoveArena, DY: 1},
	terminal.KeyLeft:  {Action: ActionMoveArena, DX: -1},
	terminal.KeyRight: {Action: ActionMoveArena, DX: 1},
	terminal.KeyCtrlC: {Action: ActionQuit},
}

// Bind resolves a key event; unbound keys give ActionNone
func Bind(ev terminal.Event) Binding {
	if ev.Type != terminal.EventKey {
		return Binding{}
	}
	if ev.Key == terminal.KeyRune {
		return runeBindings[ev.Rune]
	}
	return keyBindings[ev.Key]
}
