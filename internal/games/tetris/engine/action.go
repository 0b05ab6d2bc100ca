package engine

// Action is a discrete input already decoded from keys, touch or a replay.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRotate
	ActionCounterRotate
	ActionHardDrop
	ActionEnter
	ActionRestart
	ActionWatchReplay
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:          "none",
	ActionUp:            "up",
	ActionDown:          "down",
	ActionLeft:          "left",
	ActionRight:         "right",
	ActionRotate:        "rotate",
	ActionCounterRotate: "counter_rotate",
	ActionHardDrop:      "hard_drop",
	ActionEnter:         "enter",
	ActionRestart:       "restart",
	ActionWatchReplay:   "watch_replay",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction returns the action named s.
func ParseAction(s string) (Action, bool) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// MarshalText encodes the action by name so replays serialize readably.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action name.
func (a *Action) UnmarshalText(b []byte) error {
	v, ok := ParseAction(string(b))
	if !ok {
		return &UnknownActionError{Name: string(b)}
	}
	*a = v
	return nil
}

// UnknownActionError reports an action name that does not exist.
type UnknownActionError struct {
	Name string
}

func (e *UnknownActionError) Error() string {
	return "engine: unknown action " + e.Name
}

// gameplay reports whether a affects the simulation and is therefore recorded.
func (a Action) gameplay() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionRotate, ActionCounterRotate, ActionHardDrop:
		return true
	}
	return false
}

// repeatable reports whether holding a auto-repeats it.
func (a Action) repeatable() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionRotate, ActionCounterRotate:
		return true
	}
	return false
}
