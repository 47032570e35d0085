package lander

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander/sim"
)

// Visual characters for rendering
const (
	GroundChar      = '═'
	PadChar         = '▀'
	FlameChar       = '*'
	PlaceholderChar = '#'
)

// lowFuel turns the fuel readout yellow.
const lowFuel = 20.0

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	env := g.state.Env
	groundY := hudRows + core.Cell(env.ViewportHeight)
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, area := range g.state.LandingAreas {
		g.drawLandingArea(dst, area)
	}

	g.drawShip(dst)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.state.Status == sim.StatusLost {
		drawCenteredMessage(dst, "MISSION LOST", g.LossReason()+"  |  Press R to restart")
	}
}

// ShipRect returns the cells the ship occupies. The ship's position is the
// middle of its bottom edge, so altitude 0 rests on the ground line.
func (g *Game) ShipRect() core.Rect {
	ship := g.state.Ship
	env := g.state.Env

	var p sim.Point
	if margin := g.cfg.Rules.ClampMargin; margin > 0 {
		p = sim.TransposeClamped(ship.X, ship.Y, env, margin)
	} else {
		p = sim.Transpose(ship.X, ship.Y, env)
	}

	w, h := g.shipSize()
	bottom := hudRows + core.Cell(p.Y)
	return core.NewRect(core.Cell(p.X)-w/2, bottom-h, w, h)
}

func (g *Game) shipSize() (int, int) {
	if s, ok := g.sprite.(SpriteLoaded); ok {
		return s.Width, s.Height
	}
	env := g.state.Env
	w := max(1, core.Cell(env.ScaleX(g.state.Ship.Width)))
	h := max(1, core.Cell(env.ScaleY(g.state.Ship.Height)))
	return w, h
}

func (g *Game) drawShip(dst *core.Screen) {
	rect := g.ShipRect()

	switch s := g.sprite.(type) {
	case SpriteLoaded:
		drawSprite(dst, rect, s)
	default:
		drawPlaceholder(dst, rect)
	}

	nose := NoseHeading(g.state.Ship.Tilt)
	x, y := edgePoint(rect, nose)
	dst.SetColored(x, y, nose.Rune(), core.ColorBrightWhite)

	// The flame never paints over the ground or a pad
	if g.thrusting() {
		x, y = edgePoint(rect, nose.Opposite())
		if dst.Get(x, y) == ' ' {
			dst.SetColored(x, y, FlameChar, core.ColorOrange)
		}
	}
}

// thrusting reports whether the engine is visibly firing this frame.
func (g *Game) thrusting() bool {
	return g.state.Input.Up &&
		g.state.Ship.Fuel >= 0 &&
		g.state.Status == sim.StatusPlaying &&
		!g.paused
}

func drawSprite(dst *core.Screen, rect core.Rect, s SpriteLoaded) {
	for dy, line := range s.Art {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(rect.X+dx, rect.Y+dy, r, core.ColorWhite)
			}
			dx++
		}
	}
}

func drawPlaceholder(dst *core.Screen, rect core.Rect) {
	if rect.W >= 2 && rect.H >= 2 {
		dst.DrawBox(rect, core.ColorWhite)
		return
	}
	dst.DrawRect(rect, PlaceholderChar, core.ColorWhite)
}

// drawLandingArea draws a pad with its score label above it.
// The X axis is mirrored, so the pad's far end is its left edge on screen.
func (g *Game) drawLandingArea(dst *core.Screen, area sim.LandingArea) {
	env := g.state.Env
	left := sim.Transpose(area.X+area.Width, area.Y, env)
	right := sim.Transpose(area.X, area.Y, env)

	x := core.Cell(left.X)
	w := max(1, core.Cell(right.X)-x)
	y := hudRows + core.Cell(left.Y)
	dst.DrawHLine(x, y, w, PadChar, core.ColorYellow)

	label := fmt.Sprintf("+%d", area.Score)
	dst.DrawTextColored(x+(w-utf8.RuneCountInString(label))/2, y-1, label, core.ColorYellow)
}

type hudField struct {
	label string
	value string
	color core.Color
}

func (g *Game) drawHUD(dst *core.Screen) {
	r := g.state.Ship.Readouts()

	fuelColor := core.ColorBrightGreen
	switch {
	case g.state.Ship.Fuel < 0:
		fuelColor = core.ColorBrightRed
	case g.state.Ship.Fuel < lowFuel:
		fuelColor = core.ColorYellow
	}

	fields := []hudField{
		{"ALT", r.Altitude, core.ColorBrightWhite},
		{"VS", r.VerticalSpeed, core.ColorBrightWhite},
		{"HS", r.HorizontalSpeed, core.ColorBrightWhite},
		{"TILT", r.Tilt, core.ColorBrightWhite},
		{"FUEL", r.Fuel, fuelColor},
		{"T+", formatClock(g.elapsed), core.ColorCyan},
	}

	x := 1
	for _, f := range fields {
		dst.DrawTextColored(x, 0, f.label, core.ColorGray)
		x += utf8.RuneCountInString(f.label)
		if f.label != "T+" {
			x++
		}
		dst.DrawTextColored(x, 0, f.value, f.color)
		x += utf8.RuneCountInString(f.value) + 2
	}

	profile := "[" + g.cfg.Profile + "]"
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(profile)-1, 0, profile, core.ColorGray)
}

func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxW = core.Clamp(boxW, 0, dst.Width())
	cx, cy := dst.Bounds().Center()
	box := core.CenteredRect(cx, cy, boxW, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorDefault)
}
