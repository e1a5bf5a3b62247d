package input

import "github.com/gdamore/tcell/v2"

// Action is a client command resolved from a key event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionCursorUp
	ActionCursorDown
	ActionPageUp
	ActionPageDown
	ActionHome
	ActionEnd
	ActionConsoleToggle
	ActionConsoleScrollUp
	ActionConsoleScrollDown
	ActionCycleStatusLevel
	ActionRedraw
)

// Keymap resolves terminal key events to actions
type Keymap struct {
	runes map[rune]Action
	keys  map[tcell.Key]Action
}

// DefaultKeymap returns the built-in vi-flavored bindings
func DefaultKeymap() *Keymap {
	return &Keymap{
		runes: map[rune]Action{
			'q': ActionQuit,
			'j': ActionCursorDown,
			'k': ActionCursorUp,
			'g': ActionHome,
			'G': ActionEnd,
			'`': ActionConsoleToggle,
			'[': ActionConsoleScrollUp,
			']': ActionConsoleScrollDown,
			'L': ActionCycleStatusLevel,
		},
		keys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyUp:     ActionCursorUp,
			tcell.KeyDown:   ActionCursorDown,
			tcell.KeyPgUp:   ActionPageUp,
			tcell.KeyPgDn:   ActionPageDown,
			tcell.KeyHome:   ActionHome,
			tcell.KeyEnd:    ActionEnd,
			tcell.KeyCtrlL:  ActionRedraw,
		},
	}
}

// Lookup resolves a key event, ActionNone if unbound
func (m *Keymap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return m.runes[ev.Rune()]
	}
	return m.keys[ev.Key()]
}

// Bind attaches an action to a rune, replacing any existing binding
func (m *Keymap) Bind(r rune, action Action) {
	m.runes[r] = action
}
