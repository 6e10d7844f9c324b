package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionInteract
	ActionInventory
	ActionPause
	ActionTablet
	ActionLogPanel
	ActionLogFilter
	ActionDrop
	ActionUse
	ActionQuit  // only honoured on the pause overlay
	ActionAbort // ends the session from anywhere
	actionCount
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionPause
	case tcell.KeyF1:
		return ActionLogPanel
	case tcell.KeyCtrlC:
		return ActionAbort
	}

	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'e', 'E':
		return ActionInteract
	case 'i', 'I':
		return ActionInventory
	case 'r', 'R':
		return ActionTablet
	case 'f', 'F':
		return ActionLogFilter
	case 'd', 'D':
		return ActionDrop
	case 'u', 'U':
		return ActionUse
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}

// Input collects key presses between ticks. A press is visible for exactly
// one tick: EndTick forgets everything.
type Input struct {
	pressed [actionCount]bool
	move    Action // last movement pressed this tick
}

// Press records a.
func (in *Input) Press(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	in.pressed[a] = true
	if dx, dy := actionToDelta(a); dx != 0 || dy != 0 {
		in.move = a
	}
}

// Pressed reports whether a went down since the last EndTick.
func (in *Input) Pressed(a Action) bool {
	return a < actionCount && in.pressed[a]
}

// Move returns the last movement action pressed this tick, or ActionNone.
func (in *Input) Move() Action { return in.move }

// EndTick clears all presses.
func (in *Input) EndTick() {
	in.pressed = [actionCount]bool{}
	in.move = ActionNone
}
