package config

import (
	"errors"
	"fmt"
)

// Validate checks the values the simulation divides by or cannot run without.
func (c LanderConfig) Validate() error {
	var errs []error

	if c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world.height must be positive, got %v", c.World.Height))
	}
	if c.World.Width <= 0 {
		errs = append(errs, fmt.Errorf("world.width must be positive, got %v", c.World.Width))
	}
	if c.Ship.Height < 0 || c.Ship.Width < 0 {
		errs = append(errs, fmt.Errorf("ship size must not be negative, got %vx%v", c.Ship.Width, c.Ship.Height))
	}
	if c.Rules.ClampMargin < 0 {
		errs = append(errs, fmt.Errorf("rules.clamp_margin must not be negative, got %v", c.Rules.ClampMargin))
	}
	if c.Input.ReleaseAfter <= 0 {
		errs = append(errs, fmt.Errorf("input.release_after must be positive, got %v", c.Input.ReleaseAfter))
	}
	for i, area := range c.LandingAreas {
		if area.Width <= 0 {
			errs = append(errs, fmt.Errorf("landing_areas[%d].width must be positive, got %v", i, area.Width))
		}
	}
	if _, err := ParseProfile(c.Profile); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid lander config: %w", errors.Join(errs...))
	}
	return nil
}
