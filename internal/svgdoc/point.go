package svgdoc

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(dx, dy float64) Point {
	return Point{X: pt.X + dx, Y: pt.Y + dy}
}

// MirrorX reflects the point across the vertical axis x = 0.
func (pt Point) MirrorX() Point {
	return Point{X: -pt.X, Y: pt.Y}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// ArcPoint returns the point at the given angle on a circle around center.
// Angles grow counter-clockwise on screen, so y is subtracted.
func ArcPoint(center Point, degrees, radius float64) Point {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Point{
		X: center.X + c*radius,
		Y: center.Y - s*radius,
	}
}
