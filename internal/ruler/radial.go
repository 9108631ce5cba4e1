package ruler

import (
	"fmt"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/svgdoc"
)

// Radial draws frames as radii of a fan spanning degrees, measured
// counter-clockwise from the positive x axis.
func Radial(g Geometry, f easing.Func, degrees float64, frames int) (*svgdoc.Document, error) {
	if err := checkFrames(frames); err != nil {
		return nil, err
	}
	if !(degrees > 0 && degrees <= 360) {
		return nil, fmt.Errorf("%w: got %g", ErrDegrees, degrees)
	}

	r := g.OuterRadius
	center := svgdoc.Pt(r, r)
	cross := g.InnerRadius * 0.8

	d := g.doc(2*r, 2*r)
	d.Group("ruler")
	d.Circle(svgdoc.ClassSecondary, r, r, r)
	d.Circle(svgdoc.ClassPrimary, r, r, g.InnerRadius*0.4)
	d.Circle(svgdoc.ClassPrimary, r, r, g.InnerRadius)
	d.Line(svgdoc.ClassPrimary, r-cross, r, r+cross, r)
	d.Line(svgdoc.ClassPrimary, r, r-cross, r, r+cross)

	d.Path(svgdoc.ClassPrimary, arc(center, r, degrees, g.ArcResolution))
	for l := 1; l < g.RadialRings; l++ {
		d.Path(svgdoc.ClassSecondary, arc(center, float64(l)/float64(g.RadialRings)*r, degrees, g.ArcResolution))
	}

	for _, t := range frameTimes(frames, 0, frames) {
		a := f.At(t) * degrees
		d.Segment(svgdoc.ClassPrimary, svgdoc.ArcPoint(center, a, g.InnerRadius), svgdoc.ArcPoint(center, a, r))
	}
	d.End()
	return d, nil
}

// arc approximates a circular arc from 0 to degrees with resolution-1
// small arc commands, each well below 180 degrees.
func arc(center svgdoc.Point, radius, degrees float64, resolution int) *svgdoc.PathData {
	p := new(svgdoc.PathData)
	p.MoveTo(svgdoc.ArcPoint(center, 0, radius))
	for l := 0; l < resolution; l++ {
		a := float64(l) / float64(resolution-1) * degrees
		p.ArcTo(radius, radius, false, false, svgdoc.ArcPoint(center, a, radius))
	}
	return p
}
