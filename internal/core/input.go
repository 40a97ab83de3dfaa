package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - walk up
	ActionDown           // S, Down arrow - walk down
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionUse            // Space - open doors, confirm on text screens
	ActionConfirm        // Enter - confirm selection in menus
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUse:
		return "Use"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions asserted during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were asserted this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as asserted for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was asserted this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Directions folds the directional actions into a direction bit set.
// Opposing or triple combinations are passed through untouched; the
// movement table decides what they mean.
func (f InputFrame) Directions() Direction {
	bits := DirNone
	if f.Has(ActionUp) {
		bits |= DirUp
	}
	if f.Has(ActionDown) {
		bits |= DirDown
	}
	if f.Has(ActionLeft) {
		bits |= DirLeft
	}
	if f.Has(ActionRight) {
		bits |= DirRight
	}
	return bits
}

// Use reports whether the action button was pressed this frame.
func (f InputFrame) Use() bool {
	return f.Has(ActionUse) || f.Has(ActionConfirm)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputOf builds a frame with the given actions set. Handy in tests and replays.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
