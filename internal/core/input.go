package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action uint8

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up arrow, W
	ActionRestart        // R, only honored after game over
	ActionPause          // P, Escape
	ActionQuit           // Q, Ctrl+C; handled by the platform, never by the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions collected between two simulation ticks.
// Pressing the same key twice in one frame counts once.
type InputFrame struct {
	actions uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions |= 1 << a
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.actions&(1<<a) != 0
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	return f.actions == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = 0
}
