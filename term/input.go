package term

import (
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

// Action is a non-movement key
type Action int

const (
	ActionNone Action = iota
	ActionSinglePlayer
	ActionVersusAI
	ActionQuit
	ActionPause
	ActionMenu
	ActionRestart
)

// KeyIntent maps arrow keys, WASD and hjkl to a direction
func KeyIntent(ev *tcell.EventKey) types.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up
	case tcell.KeyDown:
		return types.Down
	case tcell.KeyLeft:
		return types.Left
	case tcell.KeyRight:
		return types.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return types.Up
		case 's', 'S', 'j':
			return types.Down
		case 'a', 'A', 'h':
			return types.Left
		case 'd', 'D', 'l':
			return types.Right
		}
	}
	return types.None
}

// KeyAction maps the remaining keys. inMenu selects the menu bindings.
func KeyAction(ev *tcell.EventKey, inMenu bool) Action {
	if ev.Key() == tcell.KeyCtrlC {
		return ActionQuit
	}

	if inMenu {
		if ev.Key() == tcell.KeyEscape {
			return ActionQuit
		}
		if ev.Key() != tcell.KeyRune {
			return ActionNone
		}
		switch ev.Rune() {
		case '1':
			return ActionSinglePlayer
		case '2':
			return ActionVersusAI
		case 'q', 'Q':
			return ActionQuit
		}
		return ActionNone
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return ActionMenu
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return ActionPause
		case ' ':
			return ActionRestart
		}
	}
	return ActionNone
}

// KeyToEvent builds the arrow key event for d
func KeyToEvent(d types.Direction) *tcell.EventKey {
	k := tcell.KeyUp
	switch d {
	case types.Down:
		k = tcell.KeyDown
	case types.Left:
		k = tcell.KeyLeft
	case types.Right:
		k = tcell.KeyRight
	}
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}
