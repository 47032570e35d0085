package sim

import "math"

// Flight model constants.
const (
	// TiltDelta is the fixed time slice used by the tilt and thrust sub-steps.
	// It does not follow the real frame delta.
	TiltDelta = 0.1

	// FuelPerThrustFrame is burned on every frame the thrust key is held,
	// regardless of frame length.
	FuelPerThrustFrame = 0.1
)

// Rules selects how Step decides the game status.
type Rules struct {
	// LossDetection ends the game once the ship is on or below the ground
	// or out of fuel. Without it the status never leaves Playing.
	LossDetection bool
}

// Named rule sets.
var (
	RulesClassic    = Rules{LossDetection: true}
	RulesFreeFlight = Rules{LossDetection: false}
)

// HasLost reports whether a ship meets the loss condition.
func HasLost(ship Ship) bool {
	return ship.Y <= 0 || ship.Fuel < 0
}

// Step advances ship by one frame of dt seconds and decides the status.
//
// With loss detection on, a ship that already meets the loss condition is
// returned unchanged with StatusLost: the frame is skipped entirely.
func Step(ship Ship, env Environment, in InputState, dt float64, rules Rules) (Ship, Status) {
	if rules.LossDetection && HasLost(ship) {
		return ship, StatusLost
	}

	ship = applyTilt(ship, in)
	ship = applyThrust(ship, in)
	ship = applyGravity(ship, env, dt)
	ship = integrate(ship, dt)

	return ship, StatusPlaying
}

// applyTilt rotates the ship. Left wins when both directions are held.
func applyTilt(ship Ship, in InputState) Ship {
	switch {
	case in.Left:
		ship.Tilt -= ship.TiltSpeed * TiltDelta
	case in.Right:
		ship.Tilt += ship.TiltSpeed * TiltDelta
	}
	return ship
}

// applyThrust accelerates the ship along its nose and burns fuel.
func applyThrust(ship Ship, in InputState) Ship {
	if !in.Up {
		return ship
	}
	angle := radians(ship.Tilt + 90)
	ship.VerticalSpeed -= ship.Thrust * TiltDelta * math.Sin(angle)
	ship.HorizontalSpeed -= ship.Thrust * TiltDelta * math.Cos(angle)
	ship.Fuel -= FuelPerThrustFrame
	return ship
}

func applyGravity(ship Ship, env Environment, dt float64) Ship {
	ship.VerticalSpeed += env.Gravity * dt
	return ship
}

func integrate(ship Ship, dt float64) Ship {
	ship.Y -= ship.VerticalSpeed * dt
	ship.X -= ship.HorizontalSpeed * dt
	return ship
}

// Advance runs one frame over the whole snapshot and returns the next one.
// Once the status is Lost every call returns s unchanged.
func (s State) Advance(dt float64, rules Rules) State {
	if s.Status == StatusLost {
		return s
	}

	next := s.Clone()
	next.Env.LastFrameDelta = dt * 1000
	next.Ship, next.Status = Step(s.Ship, s.Env, s.Input, dt, rules)
	return next
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
