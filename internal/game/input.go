package game

import (
	"github.com/gdamore/tcell/v2"

	"forklifts/internal/grid"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionQuit Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
)

// keyToAction maps a tcell key event to a game action. Every key that is not
// one of the four directions quits.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyRune:
	default:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return ActionMoveN
	case 'j', 'J', 's', 'S':
		return ActionMoveS
	case 'l', 'L', 'd', 'D':
		return ActionMoveE
	case 'h', 'H', 'a', 'A':
		return ActionMoveW
	}
	return ActionQuit
}

// actionToDirection converts a movement action to a board direction.
func actionToDirection(a Action) (grid.Direction, bool) {
	switch a {
	case ActionMoveN:
		return grid.Up, true
	case ActionMoveS:
		return grid.Down, true
	case ActionMoveE:
		return grid.Right, true
	case ActionMoveW:
		return grid.Left, true
	}
	return 0, false
}
