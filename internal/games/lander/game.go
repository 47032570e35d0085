// Package lander implements the lunar lander game session on top of the
// sim flight model: config, pause, mission clock, sprite and rendering.
package lander

import (
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander/sim"
)

// Screen rows that are not part of the viewport.
const (
	hudRows    = 1 // Readouts above the play area
	groundRows = 1 // Surface line below it
)

// Game is one lander session.
type Game struct {
	cfg     config.LanderConfig // Config of the running flight
	pending config.LanderConfig // Config the next Reset starts from
	rules   sim.Rules
	state   sim.State
	sprite  Sprite
	paused  bool
	elapsed time.Duration // Mission clock
	screenW int
	screenH int
}

// New creates a game for cfg. Call Reset before stepping.
func New(cfg config.LanderConfig) *Game {
	return &Game{
		cfg:     cfg,
		pending: cfg,
		rules:   RulesFor(cfg),
		sprite:  SpriteUnloaded{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Reset starts a new flight from the latest config.
// The sprite survives resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.pending
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.rules = RulesFor(g.cfg)
	vw, vh := g.viewport()
	g.state = NewState(g.cfg, vw, vh)
	g.paused = false
	g.elapsed = 0
}

// Step advances the flight by one frame using the frame's real delta.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Status == sim.StatusLost {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state = g.state.Advance(in.DeltaSeconds(), g.rules)
	return core.StepResult{State: g.State()}
}

// KeyDown records a held flight key such as sim.KeyArrowUp.
func (g *Game) KeyDown(key string) {
	g.state.Input = g.state.Input.KeyDown(key)
}

// KeyUp records a released flight key.
func (g *Game) KeyUp(key string) {
	g.state.Input = g.state.Input.KeyUp(key)
}

// Resize reports a new screen size. The viewport follows it only when the
// config tracks resizes; world dimensions never change.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if !g.cfg.Rules.TrackResize {
		return
	}
	g.state.Env.ViewportWidth, g.state.Env.ViewportHeight = g.viewport()
}

// ClockTick advances the mission clock while the flight is live.
func (g *Game) ClockTick(d time.Duration) {
	if g.paused || g.state.Status != sim.StatusPlaying {
		return
	}
	g.elapsed += d
}

// SetSprite replaces the ship art.
func (g *Game) SetSprite(s Sprite) {
	if s == nil {
		s = SpriteUnloaded{}
	}
	g.sprite = s
}

// Sprite returns the current ship art.
func (g *Game) Sprite() Sprite {
	return g.sprite
}

// SetConfig replaces the config. The running flight keeps its profile,
// rules and presentation; cfg applies from the next Reset.
func (g *Game) SetConfig(cfg config.LanderConfig) {
	g.pending = cfg
}

// Config returns the config the next Reset will use.
func (g *Game) Config() config.LanderConfig {
	return g.pending
}

// Profile returns the profile name of the running flight.
func (g *Game) Profile() string {
	return g.cfg.Profile
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.state.Status == sim.StatusLost,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() sim.State {
	return g.state.Clone()
}

// Elapsed returns the mission clock.
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// LossReason describes why the flight ended, or "" while it is live.
func (g *Game) LossReason() string {
	if g.state.Status != sim.StatusLost {
		return ""
	}
	if g.state.Ship.Y <= 0 {
		return "Surface contact"
	}
	return "Fuel exhausted"
}

// viewport returns the play area in cells.
func (g *Game) viewport() (float64, float64) {
	w := max(1, g.screenW)
	h := max(1, g.screenH-hudRows-groundRows)
	return float64(w), float64(h)
}

// RulesFor returns the simulation rules selected by cfg.
func RulesFor(cfg config.LanderConfig) sim.Rules {
	return sim.Rules{LossDetection: cfg.Rules.LossDetection}
}

// NewState builds the initial snapshot for a viewport of vw x vh units.
func NewState(cfg config.LanderConfig, vw, vh float64) sim.State {
	areas := make([]sim.LandingArea, 0, len(cfg.LandingAreas))
	for _, a := range cfg.LandingAreas {
		areas = append(areas, sim.LandingArea{X: a.X, Y: a.Y, Width: a.Width, Score: a.Score})
	}

	return sim.State{
		Env: sim.Environment{
			WorldHeight:    cfg.World.Height,
			WorldWidth:     cfg.World.Width,
			ViewportHeight: vh,
			ViewportWidth:  vw,
			Gravity:        cfg.Physics.Gravity,
		},
		Ship: sim.Ship{
			X:               cfg.Ship.X,
			Y:               cfg.Ship.Y,
			VerticalSpeed:   cfg.Ship.VerticalSpeed,
			HorizontalSpeed: cfg.Ship.HorizontalSpeed,
			Height:          cfg.Ship.Height,
			Width:           cfg.Ship.Width,
			Thrust:          cfg.Ship.Thrust,
			Tilt:            cfg.Ship.Tilt,
			TiltSpeed:       cfg.Ship.TiltSpeed,
			Fuel:            cfg.Ship.Fuel,
		},
		LandingAreas: areas,
		Status:       sim.StatusPlaying,
	}
}
