package hbr

import (
	"fmt"
	"path"

	"github.com/san-kum/refsheet/internal/catalog"
	"github.com/san-kum/refsheet/internal/svgdoc"
)

const (
	headHeight   = 128.0
	canvasWidth  = 256.0
	printSize    = 576.0
	printDivides = 12
)

// Guide draws a proportion sheet for r.
type Guide func(r Ratios, prec int) *svgdoc.Document

// Styles returns the guide style catalog.
func Styles() *catalog.Catalog[Guide] {
	c := catalog.New[Guide]("hbr style", ErrUnknownStyle)
	c.Register("figure", Figure)
	c.Register("simple", Simple)
	c.Register("printable", Printable)
	return c
}

// Render draws r with the named style.
func Render(styles *catalog.Catalog[Guide], style string, r Ratios, prec int) (*svgdoc.Document, error) {
	g, err := styles.Lookup(style)
	if err != nil {
		return nil, err
	}
	return g(r, prec), nil
}

// segment is a line drawn as is, or also reflected across the center.
type segment struct {
	a, b   svgdoc.Point
	mirror bool
}

func drawSegments(d *svgdoc.Document, segs []segment) {
	for _, s := range segs {
		d.Segment(svgdoc.ClassSecondary, s.a, s.b)
		if s.mirror {
			d.Segment(svgdoc.ClassSecondary, s.a.MirrorX(), s.b.MirrorX())
		}
	}
}

// body holds the measured landmarks of a figure, centered on x = 0.
type body struct {
	headWidth  float64
	shoulderX  float64
	waistX     float64
	hipX       float64
	innerFootX float64
	outerFootX float64
	shoulderY  float64
	waistY     float64
	hipY       float64
	feetY      float64
}

func measure(r Ratios) body {
	b := body{
		headWidth:  r.HeadWidth * headHeight,
		shoulderX:  r.ShoulderWidth * 0.5 * headHeight,
		waistX:     r.WaistWidth * 0.5 * headHeight,
		hipX:       r.HipWidth * 0.5 * headHeight,
		innerFootX: r.FeetSeparation * 0.5 * headHeight,
	}
	b.outerFootX = r.FeetWidth*0.5*headHeight + b.innerFootX
	b.shoulderY = (1 + r.NeckLength) * headHeight
	b.waistY = b.shoulderY + r.UpperBodyLength*headHeight
	b.hipY = b.waistY + r.LowerBodyLength*headHeight
	b.feetY = b.hipY + r.LegsLength*headHeight
	return b
}

func guideDoc(r Ratios, prec int) *svgdoc.Document {
	return svgdoc.New(canvasWidth, r.Heads()*headHeight,
		svgdoc.WithViewBoxOrigin(-canvasWidth/2, 0),
		svgdoc.WithStyle(svgdoc.RulerCSS),
		svgdoc.WithPrecision(prec))
}

// Figure draws an oval head with eye lines and a stick outline of the torso
// and legs.
func Figure(r Ratios, prec int) *svgdoc.Document {
	b := measure(r)
	d := guideDoc(r, prec)
	d.Group("hbr")

	mid := headHeight * 0.5
	eyeX := b.headWidth * 0.25
	eyeHalf := headHeight * 0.125
	d.Ellipse(svgdoc.ClassSecondary, 0, mid, b.headWidth/2, mid)
	drawSegments(d, []segment{
		{a: svgdoc.Pt(-b.headWidth/2, mid), b: svgdoc.Pt(b.headWidth/2, mid)},
		{a: svgdoc.Pt(0, 0), b: svgdoc.Pt(0, headHeight)},
		{a: svgdoc.Pt(eyeX, mid-eyeHalf), b: svgdoc.Pt(eyeX, mid+eyeHalf), mirror: true},
	})

	drawSegments(d, []segment{
		{a: svgdoc.Pt(-b.shoulderX, b.shoulderY), b: svgdoc.Pt(b.shoulderX, b.shoulderY)},
		{a: svgdoc.Pt(-b.waistX, b.waistY), b: svgdoc.Pt(b.waistX, b.waistY)},
		{a: svgdoc.Pt(-b.hipX, b.hipY), b: svgdoc.Pt(b.hipX, b.hipY)},
		{a: svgdoc.Pt(b.shoulderX, b.shoulderY), b: svgdoc.Pt(b.waistX, b.waistY), mirror: true},
		{a: svgdoc.Pt(b.waistX, b.waistY), b: svgdoc.Pt(b.hipX, b.hipY), mirror: true},
		{a: svgdoc.Pt(0, b.hipY), b: svgdoc.Pt(b.innerFootX, b.feetY), mirror: true},
		{a: svgdoc.Pt(b.hipX, b.hipY), b: svgdoc.Pt(b.outerFootX, b.feetY), mirror: true},
		{a: svgdoc.Pt(b.innerFootX, b.feetY), b: svgdoc.Pt(b.outerFootX, b.feetY), mirror: true},
	})

	d.End()
	return d
}

// Simple draws a round head and one horizontal mark per landmark.
func Simple(r Ratios, prec int) *svgdoc.Document {
	b := measure(r)
	d := guideDoc(r, prec)
	d.Group("hbr")

	d.Circle(svgdoc.ClassSecondary, 0, headHeight*0.5, headHeight*0.5)
	half := headHeight * 0.5
	for _, y := range []float64{b.shoulderY, b.waistY, b.hipY, b.feetY} {
		d.Line(svgdoc.ClassSecondary, -half, y, half, y)
	}

	d.End()
	return d
}

// Printable draws a square sheet with a fan of lines marking where the
// waist, hips and feet fall, over a 12 step grid.
func Printable(r Ratios, prec int) *svgdoc.Document {
	d := svgdoc.New(printSize, printSize,
		svgdoc.WithStyle(svgdoc.RulerCSS),
		svgdoc.WithPrecision(prec))
	d.Group("hbr")

	total := 1 + r.UpperBodyLength + r.LowerBodyLength + r.LegsLength
	marks := []float64{
		1 / total,
		(1 + r.UpperBodyLength) / total,
		(1 + r.UpperBodyLength + r.LowerBodyLength) / total,
	}
	for _, t := range marks {
		d.Line(svgdoc.ClassPrimary, 0, printSize, printSize, t*printSize)
	}
	for k := 1; k < printDivides; k++ {
		t := float64(k) / printDivides
		d.Line(svgdoc.ClassSecondary, t*printSize, printSize-t*printSize, t*printSize, printSize)
	}
	d.Polygon(svgdoc.ClassPrimary, []svgdoc.Point{
		svgdoc.Pt(0, printSize), svgdoc.Pt(printSize, printSize), svgdoc.Pt(printSize, 0),
	})

	d.End()
	return d
}

const baseDir = "character/hbr"

// Job is one guide file to produce.
type Job struct {
	Style  string
	Preset string
	Ratios Ratios
}

func (j Job) Path() string {
	return path.Join(baseDir, j.Style, fmt.Sprintf("hbr-%s.svg", j.Preset))
}

// Plan pairs every style with every preset, styles outermost. Empty
// selections mean all.
func Plan(styles *catalog.Catalog[Guide], presets *catalog.Catalog[Ratios], styleNames, presetNames []string) ([]Job, error) {
	if len(styleNames) == 0 {
		styleNames = styles.Names()
	}
	if len(presetNames) == 0 {
		presetNames = presets.Names()
	}
	for _, s := range styleNames {
		if _, err := styles.Lookup(s); err != nil {
			return nil, err
		}
	}
	var jobs []Job
	for _, s := range styleNames {
		for _, p := range presetNames {
			r, err := presets.Lookup(p)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, Job{Style: s, Preset: p, Ratios: r})
		}
	}
	return jobs, nil
}
