package core

// Action is a semantic input, abstracted from physical keys. The platform
// produces actions and the game maps them onto its own controls.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // W, Up arrow - rotate; raise level on the ready screen
	ActionDown                 // S, Down arrow - soft drop; lower level on the ready screen
	ActionLeft                 // A, Left arrow
	ActionRight                // D, Right arrow
	ActionRotate               // J, X
	ActionCounterRotate        // Z, K
	ActionHardDrop             // Space
	ActionConfirm              // Enter, P - start, pause, resume
	ActionRestart              // R
	ActionReplay               // G - watch the last game
	ActionQuit                 // Q, Ctrl+C
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
	case ActionRotate:
		return "Rotate"
	case ActionCounterRotate:
		return "CounterRotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionReplay:
		return "Replay"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick, in the
// order they arrived. Order matters: the game applies them one by one.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame. Repeats within a frame are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the triggered actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates an independent copy of this frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: append([]Action(nil), f.actions...)}
}
