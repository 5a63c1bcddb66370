package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the game model consumes them.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move selection to previous free tile
	ActionRight            // D, Right arrow - move selection to next free tile
	ActionActivate         // Space, Enter - activate the selected tile
	ActionUndo             // U - undo the last consequential move
	ActionReshuffle        // X - reshuffle symbols across live tiles
	ActionConfirm          // Enter - confirm selection in menus
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R - restart after win/lose
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionActivate:
		return "Activate"
	case ActionUndo:
		return "Undo"
	case ActionReshuffle:
		return "Reshuffle"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
