package sim

// Key names understood by the input tracker.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// InputState is the set of flight keys currently held.
// Down is tracked but has no effect on the flight model.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// SetKeyDown returns in with the named key pressed.
// Unknown key names leave the state unchanged.
func SetKeyDown(in InputState, key string) InputState {
	return setKey(in, key, true)
}

// SetKeyUp returns in with the named key released.
// Unknown key names leave the state unchanged.
func SetKeyUp(in InputState, key string) InputState {
	return setKey(in, key, false)
}

// KeyDown is the method form of SetKeyDown.
func (in InputState) KeyDown(key string) InputState {
	return SetKeyDown(in, key)
}

// KeyUp is the method form of SetKeyUp.
func (in InputState) KeyUp(key string) InputState {
	return SetKeyUp(in, key)
}

func setKey(in InputState, key string, pressed bool) InputState {
	switch key {
	case KeyArrowUp:
		in.Up = pressed
	case KeyArrowDown:
		in.Down = pressed
	case KeyArrowLeft:
		in.Left = pressed
	case KeyArrowRight:
		in.Right = pressed
	}
	return in
}
