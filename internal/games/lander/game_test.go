package lander

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func newTestGame(cfg config.LanderConfig) *Game {
	g := New(cfg)
	g.Reset(testRuntime())
	return g
}

func frame(delta time.Duration, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Delta = delta
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// findRune returns the first position of r on the screen.
func findRune(s *core.Screen, r rune) (int, int, bool) {
	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) == r {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestGameReset(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())
	st := g.Snapshot()

	if st.Ship.X != 150 || st.Ship.Y != 150 || st.Ship.Fuel != 100 {
		t.Errorf("ship not built from config: %+v", st.Ship)
	}
	if st.Env.ViewportWidth != 80 || st.Env.ViewportHeight != 22 {
		t.Errorf("viewport = %vx%v, expected 80x22", st.Env.ViewportWidth, st.Env.ViewportHeight)
	}
	if st.Env.WorldWidth != 300 || st.Env.WorldHeight != 200 || st.Env.Gravity != 1.62 {
		t.Errorf("environment not built from config: %+v", st.Env)
	}
	if len(st.LandingAreas) != 2 || st.LandingAreas[1].Score != 150 {
		t.Errorf("landing areas = %+v", st.LandingAreas)
	}
	if st.Status != sim.StatusPlaying {
		t.Errorf("Status = %v, expected Playing", st.Status)
	}
	if g.State().GameOver || g.State().Paused {
		t.Errorf("fresh game state = %+v", g.State())
	}
}

func TestGameStepUsesFrameDelta(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())

	g.Step(frame(time.Second))

	st := g.Snapshot()
	if math.Abs(st.Ship.VerticalSpeed-1.62) > 1e-9 {
		t.Errorf("VerticalSpeed = %v, expected 1.62", st.Ship.VerticalSpeed)
	}
	if math.Abs(st.Ship.Y-(150-1.62)) > 1e-9 {
		t.Errorf("Y = %v, expected 148.38", st.Ship.Y)
	}
	if st.Env.LastFrameDelta != 1000 {
		t.Errorf("LastFrameDelta = %v, expected 1000", st.Env.LastFrameDelta)
	}
}

func TestGameThrustBurnsFuel(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())

	g.KeyDown(sim.KeyArrowUp)
	g.Step(frame(0))
	g.Step(frame(0))
	g.KeyUp(sim.KeyArrowUp)
	g.Step(frame(0))

	st := g.Snapshot()
	if math.Abs(st.Ship.Fuel-99.8) > 1e-9 {
		t.Errorf("Fuel = %v, expected 99.8 after two thrust frames", st.Ship.Fuel)
	}
	if math.Abs(st.Ship.VerticalSpeed-(-0.4)) > 1e-9 {
		t.Errorf("VerticalSpeed = %v, expected -0.4", st.Ship.VerticalSpeed)
	}
}

func TestGameUnknownKeyIgnored(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())

	g.KeyDown("Space")
	if got := g.Snapshot().Input; got != (sim.InputState{}) {
		t.Errorf("unknown key changed input: %+v", got)
	}

	g.KeyDown(sim.KeyArrowDown)
	g.Step(frame(0))
	st := g.Snapshot()
	if !st.Input.Down {
		t.Error("Down should be tracked")
	}
	if st.Ship.Fuel != 100 || st.Ship.VerticalSpeed != 0 {
		t.Errorf("Down must not affect the ship: %+v", st.Ship)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())

	res := g.Step(frame(time.Second, core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused after pause action")
	}
	before := g.Snapshot()

	g.Step(frame(time.Second))
	if g.Snapshot().Ship != before.Ship {
		t.Error("ship moved while paused")
	}

	g.ClockTick(time.Second)
	if g.Elapsed() != 0 {
		t.Errorf("clock advanced while paused: %v", g.Elapsed())
	}

	res = g.Step(frame(time.Second, core.ActionPause))
	if res.State.Paused {
		t.Error("expected resume on second pause action")
	}
	if g.Snapshot().Ship == before.Ship {
		t.Error("ship should move after resume")
	}
}

func TestGameLossIsTerminal(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	cfg.Ship.Y = 0

	g := newTestGame(cfg)
	res := g.Step(frame(time.Second))
	if !res.State.GameOver {
		t.Fatal("classic profile should lose at altitude 0")
	}
	if got := g.LossReason(); got != "Surface contact" {
		t.Errorf("LossReason() = %q", got)
	}

	before := g.Snapshot()
	g.KeyDown(sim.KeyArrowUp)
	g.Step(frame(time.Second))
	g.Step(frame(time.Second, core.ActionPause))

	after := g.Snapshot()
	if after.Ship != before.Ship || after.Status != sim.StatusLost {
		t.Errorf("lost game changed: %+v", after.Ship)
	}
	if g.State().Paused {
		t.Error("pause should be ignored once lost")
	}

	g.ClockTick(time.Second)
	if g.Elapsed() != 0 {
		t.Error("clock should stop once lost")
	}
}

func TestGameFuelExhausted(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	cfg.Ship.Fuel = 0.05

	g := newTestGame(cfg)
	g.KeyDown(sim.KeyArrowUp)
	g.Step(frame(0)) // burns to -0.05
	res := g.Step(frame(0))

	if !res.State.GameOver {
		t.Fatal("expected loss with a negative tank")
	}
	if got := g.LossReason(); got != "Fuel exhausted" {
		t.Errorf("LossReason() = %q", got)
	}
}

func TestGameFreeFlightNeverLoses(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	config.ApplyProfile(&cfg, config.ProfileFreeFlight)
	cfg.Ship.Y = 0
	cfg.Ship.Fuel = -1

	g := newTestGame(cfg)
	for range 10 {
		if res := g.Step(frame(time.Second)); res.State.GameOver {
			t.Fatal("freeflight must never end the game")
		}
	}
	if g.Snapshot().Ship.Y >= 0 {
		t.Errorf("ship should keep falling through the surface, Y = %v", g.Snapshot().Ship.Y)
	}
	if g.LossReason() != "" {
		t.Error("no loss reason while playing")
	}
}

func TestGameResize(t *testing.T) {
	classic := newTestGame(config.DefaultLanderConfig())
	classic.Resize(120, 40)
	if st := classic.Snapshot(); st.Env.ViewportWidth != 80 || st.Env.ViewportHeight != 22 {
		t.Errorf("classic viewport changed on resize: %vx%v", st.Env.ViewportWidth, st.Env.ViewportHeight)
	}

	cfg := config.DefaultLanderConfig()
	config.ApplyProfile(&cfg, config.ProfileFreeFlight)
	free := newTestGame(cfg)
	free.Resize(120, 40)
	st := free.Snapshot()
	if st.Env.ViewportWidth != 120 || st.Env.ViewportHeight != 38 {
		t.Errorf("freeflight viewport = %vx%v, expected 120x38", st.Env.ViewportWidth, st.Env.ViewportHeight)
	}
	if st.Env.WorldWidth != 300 || st.Env.WorldHeight != 200 {
		t.Error("world dimensions must not change on resize")
	}
}

func TestGameResetKeepsSpriteAndAppliesConfig(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())
	sprite, err := LoadSprite("")
	if err != nil {
		t.Fatal(err)
	}
	g.SetSprite(sprite)
	g.ClockTick(time.Second)
	g.Step(frame(time.Second, core.ActionPause))

	cfg := config.DefaultLanderConfig()
	cfg.Ship.Fuel = 42
	g.SetConfig(cfg)
	if g.Snapshot().Ship.Fuel != 100 {
		t.Error("SetConfig should not touch the running flight")
	}

	g.Reset(testRuntime())

	if g.Snapshot().Ship.Fuel != 42 {
		t.Errorf("Fuel = %v, expected config value 42 after reset", g.Snapshot().Ship.Fuel)
	}
	if _, ok := g.Sprite().(SpriteLoaded); !ok {
		t.Error("sprite should survive reset")
	}
	if g.Elapsed() != 0 || g.State().Paused {
		t.Error("reset should clear clock and pause")
	}

	g.SetSprite(nil)
	if _, ok := g.Sprite().(SpriteUnloaded); !ok {
		t.Error("nil sprite should become SpriteUnloaded")
	}
}

func TestGameConfigReloadWaitsForReset(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())

	cfg := config.DefaultLanderConfig()
	config.ApplyProfile(&cfg, config.ProfileFreeFlight)
	g.SetConfig(cfg)
	g.Resize(120, 40)

	if st := g.Snapshot(); st.Env.ViewportWidth != 80 {
		t.Errorf("viewport followed resize mid-flight: width %v", st.Env.ViewportWidth)
	}
	if !g.rules.LossDetection {
		t.Error("rules changed mid-flight")
	}
	if g.Profile() != "classic" {
		t.Errorf("Profile() = %q, expected classic until reset", g.Profile())
	}
	if g.Config().Profile != "freeflight" {
		t.Errorf("Config() = %q, expected the pending freeflight config", g.Config().Profile)
	}

	screen := core.NewScreen(120, 39)
	g.Render(screen)
	if hud := screen.Row(0); !strings.Contains(hud, "[classic]") || strings.Contains(hud, "freeflight") {
		t.Errorf("HUD shows the pending profile: %q", hud)
	}

	g.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 60})
	if g.rules.LossDetection || g.Profile() != "freeflight" {
		t.Error("reset should apply the pending config")
	}
	g.Resize(100, 30)
	if st := g.Snapshot(); st.Env.ViewportWidth != 100 {
		t.Errorf("freeflight viewport width = %v, expected 100", st.Env.ViewportWidth)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"ALT 150.00", "FUEL 100.00", "TILT 0.00", "T+00:00", "[classic]", "+50", "+150"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	if got := screen.Get(0, 23); got != GroundChar {
		t.Errorf("ground row = %q, expected %q", got, GroundChar)
	}

	x, y, ok := findRune(screen, '^')
	if !ok {
		t.Fatal("nose indicator not drawn")
	}
	if got := screen.Get(x, y+1); got != '─' {
		t.Errorf("placeholder box expected below nose, got %q", got)
	}
	if strings.ContainsRune(out, FlameChar) {
		t.Error("flame drawn without thrust")
	}

	g.KeyDown(sim.KeyArrowUp)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), FlameChar) {
		t.Error("flame missing while thrusting")
	}
}

func TestGameRenderFlameKeepsGround(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	cfg.Ship.Y = 0
	g := newTestGame(cfg)
	g.KeyDown(sim.KeyArrowUp)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if strings.ContainsRune(screen.String(), FlameChar) {
		t.Error("flame painted over the ground line")
	}
	groundY := hudRows + 22
	for x := range screen.Width() {
		if got := screen.Get(x, groundY); got != GroundChar && got != PadChar {
			t.Fatalf("ground cell %d = %q", x, got)
		}
	}
}

func TestGameRenderOverlayCentered(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())
	g.Step(frame(time.Millisecond, core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 21x5 box centered on (40, 12), title on its second row
	if screen.Get(30, 10) != '┌' || screen.Get(50, 14) != '┘' {
		t.Errorf("box corners = %q %q", screen.Get(30, 10), screen.Get(50, 14))
	}
	if got := string([]rune(screen.Row(11))[37:43]); got != "PAUSED" {
		t.Errorf("title row = %q, expected PAUSED at column 37", got)
	}
}

func TestGameRenderSprite(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())
	sprite, err := LoadSprite("")
	if err != nil {
		t.Fatal(err)
	}
	g.SetSprite(sprite)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	rect := g.ShipRect()
	if rect.W != sprite.Width || rect.H != sprite.Height {
		t.Errorf("ship rect %+v should match sprite %dx%d", rect, sprite.Width, sprite.Height)
	}
	if !strings.Contains(screen.String(), sprite.Art[1]) {
		t.Errorf("sprite art missing:\n%s", screen.String())
	}
}

func TestGameRenderOverlays(t *testing.T) {
	g := newTestGame(config.DefaultLanderConfig())
	g.Step(frame(0, core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	cfg := config.DefaultLanderConfig()
	cfg.Ship.Y = 0
	lost := newTestGame(cfg)
	lost.Step(frame(0))
	lost.Render(screen)
	if !strings.Contains(screen.String(), "MISSION LOST") {
		t.Error("loss overlay missing")
	}
}

func TestShipRectClamped(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	config.ApplyProfile(&cfg, config.ProfileFreeFlight)
	cfg.Ship.X = 1000 // far off the left edge
	cfg.Ship.Y = -500 // far below the surface

	g := newTestGame(cfg)
	rect := g.ShipRect()

	// Center clamped to margin 2, bottom clamped to viewport-2 plus the HUD row
	if cx := rect.X + rect.W/2; cx != 2 {
		t.Errorf("clamped center x = %d, expected 2", cx)
	}
	if rect.Bottom() != hudRows+20 {
		t.Errorf("clamped bottom = %d, expected %d", rect.Bottom(), hudRows+20)
	}
}

func TestNoseHeading(t *testing.T) {
	tests := []struct {
		tilt float64
		want Heading
	}{
		{0, HeadingUp},
		{22, HeadingUp},
		{23, HeadingUpRight},
		{90, HeadingRight},
		{180, HeadingDown},
		{-90, HeadingLeft},
		{-45, HeadingUpLeft},
		{360, HeadingUp},
		{725, HeadingUp},
		{-1000, HeadingRight}, // -1000 mod 360 = -280 -> 80
	}

	for _, tc := range tests {
		if got := NoseHeading(tc.tilt); got != tc.want {
			t.Errorf("NoseHeading(%v) = %d, expected %d", tc.tilt, got, tc.want)
		}
	}

	if HeadingUp.Opposite() != HeadingDown || HeadingUpLeft.Opposite() != HeadingDownRight {
		t.Error("Opposite() mismatch")
	}
	if HeadingRight.Rune() != '>' {
		t.Errorf("HeadingRight.Rune() = %q", HeadingRight.Rune())
	}
}
