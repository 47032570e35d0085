package sim

import "github.com/vovakirdan/tui-lander/internal/core"

// DefaultClampMargin keeps a pixel viewport sprite this far inside the edges.
const DefaultClampMargin = 100

// Point is a position in viewport units, origin top-left.
type Point struct {
	X, Y float64
}

// Transpose maps world meters (origin bottom, Y up) to viewport units
// (origin top-left, Y down). The X axis is mirrored: X = WorldWidth is the
// left edge of the viewport.
func Transpose(x, y float64, env Environment) Point {
	return Point{
		X: (env.WorldWidth - x) * (env.ViewportWidth / env.WorldWidth),
		Y: (env.WorldHeight - y) * (env.ViewportHeight / env.WorldHeight),
	}
}

// TransposeClamped is Transpose with each axis held inside
// [margin, viewport - margin]. It is for drawing only.
func TransposeClamped(x, y float64, env Environment, margin float64) Point {
	p := Transpose(x, y, env)
	p.X = core.ClampF(p.X, margin, env.ViewportWidth-margin)
	p.Y = core.ClampF(p.Y, margin, env.ViewportHeight-margin)
	return p
}

// Untranspose is the inverse of Transpose.
func Untranspose(p Point, env Environment) (x, y float64) {
	x = env.WorldWidth - p.X*(env.WorldWidth/env.ViewportWidth)
	y = env.WorldHeight - p.Y*(env.WorldHeight/env.ViewportHeight)
	return x, y
}

// ScaleX converts a horizontal length in meters to viewport units.
func (env Environment) ScaleX(meters float64) float64 {
	return meters * env.ViewportWidth / env.WorldWidth
}

// ScaleY converts a vertical length in meters to viewport units.
func (env Environment) ScaleY(meters float64) float64 {
	return meters * env.ViewportHeight / env.WorldHeight
}
