package ruler

import (
	"github.com/san-kum/refsheet/internal/easing"
	"github.com/san-kum/refsheet/internal/svgdoc"
)

// Graph plots f over [0, 1] inside a square with a 3x3 reference grid.
// Output grows upward.
func Graph(g Geometry, f easing.Func) *svgdoc.Document {
	s := g.Width
	d := g.doc(s, s)
	d.Group("ruler")
	for _, v := range []float64{0, s / 2, s} {
		d.Line(svgdoc.ClassSecondary, v, 0, v, s)
	}
	for _, v := range []float64{0, s / 2, s} {
		d.Line(svgdoc.ClassSecondary, 0, v, s, v)
	}

	n := g.GraphResolution
	pts := make([]svgdoc.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, svgdoc.Pt(t*s, s-f.At(t)*s))
	}
	d.Polyline(svgdoc.ClassPrimary, pts)
	d.End()
	return d
}
