// Package sim is the lander flight model: held-key tracking, the per-frame
// simulation step and world-to-viewport transposition. It knows nothing about
// terminals or rendering.
package sim

// Ship is the lander. Values are replaced each frame, never shared.
type Ship struct {
	X, Y            float64 // Position in meters, Y is altitude
	VerticalSpeed   float64 // m/s, positive is falling
	HorizontalSpeed float64 // m/s
	Height, Width   float64 // meters
	Thrust          float64 // m/s^2, constant
	Tilt            float64 // degrees, signed and unbounded (never wrapped)
	TiltSpeed       float64 // degrees/s, constant
	Fuel            float64 // kg, may go negative
}

// Environment holds the world constants and the viewport the world is shown in.
type Environment struct {
	WorldHeight    float64 // meters
	WorldWidth     float64 // meters
	ViewportHeight float64 // display units (pixels, or cells in a terminal)
	ViewportWidth  float64
	Gravity        float64 // m/s^2
	LastFrameDelta float64 // milliseconds, informational
}

// LandingArea is a pad on the surface.
// Step never reads it: landing detection and scoring do not exist yet.
type LandingArea struct {
	X, Y  float64 // meters
	Width float64 // meters
	Score int
}

// Status is the game status decided by Step.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// State is the full snapshot threaded from frame to frame.
type State struct {
	Env          Environment
	Ship         Ship
	Input        InputState
	LandingAreas []LandingArea
	Status       Status
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	out := s
	if s.LandingAreas != nil {
		out.LandingAreas = make([]LandingArea, len(s.LandingAreas))
		copy(out.LandingAreas, s.LandingAreas)
	}
	return out
}
