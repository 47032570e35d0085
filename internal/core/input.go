package core

import "time"

// Action represents a platform-level action, abstracted from physical key presses.
// Flight controls are not actions: they are held keys tracked by the game itself.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart after the game is over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the platform hands a game for one frame:
// the actions triggered since the previous frame and the real elapsed time.
type InputFrame struct {
	Actions map[Action]bool
	Delta   time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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

// DeltaSeconds returns the elapsed frame time in seconds.
func (f InputFrame) DeltaSeconds() float64 {
	return float64(f.Delta.Milliseconds()) / 1000
}

// Clear resets all actions and the delta for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Delta = 0
}
