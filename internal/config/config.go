// Package config provides YAML-based configuration loading for the lander:
// world and ship parameters, landing areas, rule profiles and input timing.
package config

import "time"

// LanderConfig contains all configuration for the lunar lander.
type LanderConfig struct {
	Profile      string              `yaml:"profile"`
	World        WorldConfig         `yaml:"world"`
	Physics      PhysicsConfig       `yaml:"physics"`
	Ship         ShipConfig          `yaml:"ship"`
	LandingAreas []LandingAreaConfig `yaml:"landing_areas"`
	Rules        RulesConfig         `yaml:"rules"`
	Input        InputConfig         `yaml:"input"`
	Sprite       SpriteConfig        `yaml:"sprite"`
}

// WorldConfig defines the world size in meters.
type WorldConfig struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
}

// PhysicsConfig defines environment constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // m/s^2
}

// ShipConfig defines the initial ship state.
type ShipConfig struct {
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	VerticalSpeed   float64 `yaml:"vertical_speed"`
	HorizontalSpeed float64 `yaml:"horizontal_speed"`
	Height          float64 `yaml:"height"`
	Width           float64 `yaml:"width"`
	Thrust          float64 `yaml:"thrust"`
	Tilt            float64 `yaml:"tilt"`
	TiltSpeed       float64 `yaml:"tilt_speed"`
	Fuel            float64 `yaml:"fuel"`
}

// LandingAreaConfig defines a landing pad on the surface.
type LandingAreaConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
	Score int     `yaml:"score"`
}

// RulesConfig defines the status decision and presentation switches.
type RulesConfig struct {
	LossDetection bool    `yaml:"loss_detection"` // Game over on ground contact or empty tank
	TrackResize   bool    `yaml:"track_resize"`   // Window resizes update the viewport
	ClampMargin   float64 `yaml:"clamp_margin"`   // Cells kept between ship and screen edge, 0 = off
}

// InputConfig defines keyboard timing.
type InputConfig struct {
	// ReleaseAfter is how long a key counts as held after its last press.
	// Terminals report presses and auto-repeats but never releases.
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// SpriteConfig points at the ship art.
type SpriteConfig struct {
	Path string `yaml:"path"` // Empty uses the built-in sprite
}
