package config

import "fmt"

// Profile names a set of game rules.
type Profile string

const (
	ProfileClassic    Profile = "classic"
	ProfileFreeFlight Profile = "freeflight"
)

// freeFlightMargin keeps the ship this many cells inside the screen when
// nothing ends the flight.
const freeFlightMargin = 2

// ProfileInfo describes a profile for listings.
type ProfileInfo struct {
	Name        Profile
	Description string
}

// Profiles returns all known profiles, default first.
func Profiles() []ProfileInfo {
	return []ProfileInfo{
		{
			Name:        ProfileClassic,
			Description: "Game over on touchdown or an empty tank; fixed viewport",
		},
		{
			Name:        ProfileFreeFlight,
			Description: "No game over; viewport follows the window, ship kept on screen",
		},
	}
}

// ParseProfile validates a profile name. Empty selects classic.
func ParseProfile(name string) (Profile, error) {
	switch Profile(name) {
	case "", ProfileClassic:
		return ProfileClassic, nil
	case ProfileFreeFlight:
		return ProfileFreeFlight, nil
	default:
		return "", fmt.Errorf("config: unknown profile %q", name)
	}
}

// ApplyProfile modifies the config rules based on a profile.
func ApplyProfile(cfg *LanderConfig, p Profile) {
	cfg.Profile = string(p)

	switch p {
	case ProfileFreeFlight:
		cfg.Rules.LossDetection = false
		cfg.Rules.TrackResize = true
		if cfg.Rules.ClampMargin <= 0 {
			cfg.Rules.ClampMargin = freeFlightMargin
		}
	default:
		cfg.Rules.LossDetection = true
		cfg.Rules.TrackResize = false
	}
}
