package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Heading is one of eight screen directions, clockwise from up.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingUpRight
	HeadingRight
	HeadingDownRight
	HeadingDown
	HeadingDownLeft
	HeadingLeft
	HeadingUpLeft
)

var headingRunes = [8]rune{'^', '/', '>', '\\', 'v', '/', '<', '\\'}

// Screen offsets (dx, dy) for each heading, y grows downward.
var headingOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// NoseHeading returns where the nose points on screen for a tilt in degrees.
// Thrust pushes the ship along this heading: tilt 0 is straight up and
// positive tilt turns clockwise. Tilt is unbounded, so it is wrapped here.
func NoseHeading(tilt float64) Heading {
	deg := math.Mod(tilt, 360)
	if deg < 0 {
		deg += 360
	}
	return Heading(int(math.Round(deg/45)) % 8)
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	return (h + 4) % 8
}

// Rune returns the indicator character for this heading.
func (h Heading) Rune() rune {
	return headingRunes[h%8]
}

// edgePoint returns the cell just outside r in direction h.
func edgePoint(r core.Rect, h Heading) (int, int) {
	off := headingOffsets[h%8]
	cx, cy := r.Center()

	x := cx
	switch {
	case off[0] < 0:
		x = r.X - 1
	case off[0] > 0:
		x = r.Right()
	}

	y := cy
	switch {
	case off[1] < 0:
		y = r.Y - 1
	case off[1] > 0:
		y = r.Bottom()
	}
	return x, y
}
