// Package ruler draws inbetweening rulers: timing guides showing where the
// frames of an interpolation land along an easing curve.
//
// Four layouts are available: a straight bar, a triangle whose spokes meet
// at a vanishing point, a radial fan over a configurable angle, and a plot
// of the curve itself.
package ruler

import (
	"errors"
	"fmt"

	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/svgdoc"
)

var (
	ErrFrames  = errors.New("ruler: frame count must be at least 2")
	ErrDegrees = errors.New("ruler: angle must be in (0, 360]")
	ErrKind    = errors.New("ruler: unknown ruler kind")
)

// Geometry holds the drawing dimensions shared by all layouts.
type Geometry struct {
	Width             float64 `yaml:"width"`
	StraightHeight    float64 `yaml:"straight_height"`
	TriangleHeight    float64 `yaml:"triangle_height"`
	OuterRadius       float64 `yaml:"outer_radius"`
	InnerRadius       float64 `yaml:"inner_radius"`
	ArcResolution     int     `yaml:"arc_resolution"`
	GraphResolution   int     `yaml:"graph_resolution"`
	TriangleDivisions int     `yaml:"triangle_divisions"`
	RadialRings       int     `yaml:"radial_rings"`
	Precision         int     `yaml:"precision"`
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:             576,
		StraightHeight:    24,
		TriangleHeight:    384,
		OuterRadius:       288,
		InnerRadius:       22.5,
		ArcResolution:     9,
		GraphResolution:   64,
		TriangleDivisions: 12,
		RadialRings:       6,
		Precision:         3,
	}
}

// Validate rejects geometry that cannot produce a drawing.
func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.StraightHeight <= 0 || g.TriangleHeight <= 0:
		return fmt.Errorf("ruler: width and heights must be positive")
	case g.OuterRadius <= 0 || g.InnerRadius < 0 || g.InnerRadius >= g.OuterRadius:
		return fmt.Errorf("ruler: need 0 <= inner radius < outer radius")
	case g.ArcResolution < 2 || g.GraphResolution < 1:
		return fmt.Errorf("ruler: arc resolution must be >= 2 and graph resolution >= 1")
	case g.TriangleDivisions < 1 || g.RadialRings < 1:
		return fmt.Errorf("ruler: triangle divisions and radial rings must be >= 1")
	case g.Precision < 0:
		return fmt.Errorf("ruler: precision must not be negative")
	}
	return nil
}

func (g Geometry) doc(width, height float64) *svgdoc.Document {
	return svgdoc.New(width, height, svgdoc.WithStyle(svgdoc.RulerCSS), svgdoc.WithPrecision(g.Precision))
}

// frameTimes returns i/(frames-1) for i in [from, to).
func frameTimes(frames, from, to int) []float64 {
	ts := make([]float64, 0, to-from)
	for i := from; i < to; i++ {
		ts = append(ts, float64(i)/float64(frames-1))
	}
	return ts
}

func checkFrames(frames int) error {
	if frames < 2 {
		return fmt.Errorf("%w: got %d", ErrFrames, frames)
	}
	return nil
}

// Straight draws one tick per frame on a horizontal bar.
func Straight(g Geometry, f easing.Func, frames int) (*svgdoc.Document, error) {
	if err := checkFrames(frames); err != nil {
		return nil, err
	}
	d := g.doc(g.Width, g.StraightHeight)
	d.Group("ruler")
	d.Line(svgdoc.ClassPrimary, 0, g.StraightHeight/2, g.Width, g.StraightHeight/2)
	for _, t := range frameTimes(frames, 0, frames) {
		x := f.At(t) * g.Width
		d.Line(svgdoc.ClassPrimary, x, 0, x, g.StraightHeight)
	}
	d.End()
	return d, nil
}

// Triangle draws the inner frames as spokes converging on the apex of a
// downward triangle; the first and last frames are the triangle's sides.
func Triangle(g Geometry, f easing.Func, frames int) (*svgdoc.Document, error) {
	if err := checkFrames(frames); err != nil {
		return nil, err
	}
	w, h := g.Width, g.TriangleHeight
	apex := svgdoc.Pt(w/2, h)

	d := g.doc(w, h)
	d.Group("ruler")
	d.Polygon(svgdoc.ClassPrimary, []svgdoc.Point{svgdoc.Pt(0, 0), svgdoc.Pt(w, 0), apex})
	for _, t := range frameTimes(frames, 1, frames-1) {
		d.Segment(svgdoc.ClassPrimary, svgdoc.Pt(f.At(t)*w, 0), apex)
	}
	n := g.TriangleDivisions
	for k := 1; k < n; k++ {
		t := float64(k) / float64(n)
		d.Line(svgdoc.ClassSecondary, t*w/2, t*h, w-t*w/2, t*h)
	}
	d.Line(svgdoc.ClassSecondary, w/2, 0, w/2, h)
	d.End()
	return d, nil
}
