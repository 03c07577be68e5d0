package game

import "github.com/gdamore/tcell/v2"

// ActionKind identifies what a key press asks the game to do.
type ActionKind int

const (
	// ActionNone - the key is not bound
	ActionNone ActionKind = iota
	// ActionMove - move the player by DX, DY
	ActionMove
	// ActionToggleFullscreen - switch between windowed and fullscreen
	ActionToggleFullscreen
	// ActionQuit - leave the game
	ActionQuit
)

// String returns a human-readable action name.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionToggleFullscreen:
		return "toggle_fullscreen"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is the result of mapping a key press.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

// ActionFor maps a key event to an action.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return Action{Kind: ActionToggleFullscreen}
		}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}

	case tcell.KeyUp:
		return Action{Kind: ActionMove, DY: -1}
	case tcell.KeyDown:
		return Action{Kind: ActionMove, DY: 1}
	case tcell.KeyLeft:
		return Action{Kind: ActionMove, DX: -1}
	case tcell.KeyRight:
		return Action{Kind: ActionMove, DX: 1}

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Action{Kind: ActionQuit}
		}
	}
	return Action{Kind: ActionNone}
}
