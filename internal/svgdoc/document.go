// Package svgdoc assembles the SVG documents written by the generators.
//
// All coordinates pass through a [numfmt.Formatter] so that regenerating an
// asset yields byte-identical output.
package svgdoc

import (
	"fmt"
	"strings"

	"github.com/san-kum/refsheet/internal/numfmt"
)

const indent = "    "

type Document struct {
	fmt    numfmt.Formatter
	width  float64
	height float64
	minX   float64
	minY   float64
	css    string
	body   strings.Builder
	depth  int
}

type Option func(*Document)

// WithViewBoxOrigin moves the top left corner of the view box.
func WithViewBoxOrigin(x, y float64) Option {
	return func(d *Document) {
		d.minX = x
		d.minY = y
	}
}

func WithPrecision(prec int) Option {
	return func(d *Document) {
		d.fmt = numfmt.New(prec)
	}
}

// WithStyle embeds a style sheet ahead of the content.
func WithStyle(css string) Option {
	return func(d *Document) {
		d.css = css
	}
}

func New(width, height float64, opts ...Option) *Document {
	d := &Document{
		fmt:    numfmt.New(numfmt.DefaultPrecision),
		width:  width,
		height: height,
		depth:  1,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) Formatter() numfmt.Formatter {
	return d.fmt
}

func (d *Document) n(x float64) string {
	return d.fmt.Must(x)
}

func (d *Document) line(s string) {
	d.body.WriteString(strings.Repeat(indent, d.depth))
	d.body.WriteString(s)
	d.body.WriteByte('\n')
}

// Group opens <g id="...">; close it with End.
func (d *Document) Group(id string) {
	d.line(fmt.Sprintf(`<g id="%s">`, id))
	d.depth++
}

func (d *Document) End() {
	if d.depth <= 1 {
		return
	}
	d.depth--
	d.line("</g>")
}

func (d *Document) Line(class string, x1, y1, x2, y2 float64) {
	d.line(fmt.Sprintf(`<line class="%s" x1="%s" y1="%s" x2="%s" y2="%s" />`,
		class, d.n(x1), d.n(y1), d.n(x2), d.n(y2)))
}

func (d *Document) Segment(class string, a, b Point) {
	d.Line(class, a.X, a.Y, b.X, b.Y)
}

func (d *Document) points(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = d.fmt.Pair(p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (d *Document) Polyline(class string, pts []Point) {
	d.line(fmt.Sprintf(`<polyline class="%s" points="%s" />`, class, d.points(pts)))
}

func (d *Document) Polygon(class string, pts []Point) {
	d.line(fmt.Sprintf(`<polygon class="%s" points="%s" />`, class, d.points(pts)))
}

func (d *Document) Circle(class string, cx, cy, r float64) {
	d.line(fmt.Sprintf(`<circle class="%s" cx="%s" cy="%s" r="%s" />`, class, d.n(cx), d.n(cy), d.n(r)))
}

func (d *Document) Ellipse(class string, cx, cy, rx, ry float64) {
	d.line(fmt.Sprintf(`<ellipse class="%s" cx="%s" cy="%s" rx="%s" ry="%s" />`,
		class, d.n(cx), d.n(cy), d.n(rx), d.n(ry)))
}

func (d *Document) Rect(class string, x, y, w, h float64) {
	d.line(fmt.Sprintf(`<rect class="%s" x="%s" y="%s" width="%s" height="%s" />`,
		class, d.n(x), d.n(y), d.n(w), d.n(h)))
}

func (d *Document) Path(class string, p *PathData) {
	d.line(fmt.Sprintf(`<path class="%s" d="%s" />`, class, p.Format(d.fmt)))
}

// String renders the complete document, terminated by a newline.
func (d *Document) String() string {
	var sb strings.Builder
	w, h := d.n(d.width), d.n(d.height)
	fmt.Fprintf(&sb, `<svg width="%s" height="%s" viewBox="%s %s %s %s" xmlns="http://www.w3.org/2000/svg">`+"\n",
		w, h, d.n(d.minX), d.n(d.minY), w, h)
	if d.css != "" {
		sb.WriteString(indent + "<style>\n")
		for _, l := range strings.Split(d.css, "\n") {
			if l == "" {
				sb.WriteByte('\n')
				continue
			}
			sb.WriteString(indent + l + "\n")
		}
		sb.WriteString(indent + "</style>\n")
	}
	sb.WriteString(d.body.String())
	for i := d.depth; i > 1; i-- {
		sb.WriteString(strings.Repeat(indent, i-1) + "</g>\n")
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (d *Document) Bytes() []byte {
	return []byte(d.String())
}
