package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front-ends map keys and clicks to actions; the engine only sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionStart        // Click, Enter, Space, R - start or restart a game
	ActionHelp         // ? - toggle help
	ActionQuit         // Q, Ctrl+C
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
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered by one input event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf creates a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
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

// Empty returns true if no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
