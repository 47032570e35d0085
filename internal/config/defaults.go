package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default lander configuration.
// It matches the embedded defaults/lander.yaml.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Profile: string(ProfileClassic),
		World: WorldConfig{
			Height: 200,
			Width:  300,
		},
		Physics: PhysicsConfig{
			Gravity: 1.62,
		},
		Ship: ShipConfig{
			X:         150,
			Y:         150,
			Height:    20,
			Width:     12,
			Thrust:    2,
			TiltSpeed: 90,
			Fuel:      100,
		},
		LandingAreas: []LandingAreaConfig{
			{X: 60, Y: 0, Width: 30, Score: 50},
			{X: 230, Y: 0, Width: 15, Score: 150},
		},
		Rules: RulesConfig{
			LossDetection: true,
		},
		Input: InputConfig{
			ReleaseAfter: 700 * time.Millisecond, // X11 waits 660ms before the first repeat
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
