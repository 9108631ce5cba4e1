package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/san-kum/refsheet/internal/easing"
)

const (
	minPNGSize = 32
	gridLines  = 4
)

var (
	paper     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	gridColor = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	ink       = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// stroker fills thin quads along segments.
type stroker struct {
	z     *vector.Rasterizer
	width float64
}

func (s stroker) segment(x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*s.width/2, dx/l*s.width/2
	s.z.MoveTo(float32(x0+nx), float32(y0+ny))
	s.z.LineTo(float32(x1+nx), float32(y1+ny))
	s.z.LineTo(float32(x1-nx), float32(y1-ny))
	s.z.LineTo(float32(x0-nx), float32(y0-ny))
	s.z.ClosePath()
}

// Image rasterizes f on a size x size canvas: a light grid, the curve and
// an optional caption in the top left corner.
func Image(f easing.Func, size int, caption string) (*image.RGBA, error) {
	if size < minPNGSize {
		return nil, fmt.Errorf("preview: image size must be at least %d", minPNGSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)

	margin := float64(size) / 10
	inner := float64(size) - 2*margin
	samples := easing.Samples(f, max(size/2, minSamples))
	lo, hi := bounds(samples)
	px := func(t float64) float64 { return margin + t*inner }
	py := func(v float64) float64 { return margin + (hi-v)/(hi-lo)*inner }

	z := vector.NewRasterizer(size, size)
	grid := stroker{z: z, width: 1}
	for i := 0; i <= gridLines; i++ {
		t := float64(i) / gridLines
		grid.segment(px(t), py(hi), px(t), py(lo))
		grid.segment(px(0), margin+t*inner, px(1), margin+t*inner)
	}
	z.Draw(img, img.Bounds(), image.NewUniform(gridColor), image.Point{})

	z.Reset(size, size)
	curve := stroker{z: z, width: math.Max(1.5, float64(size)/160)}
	for i := 1; i < len(samples); i++ {
		t0 := float64(i-1) / float64(len(samples)-1)
		t1 := float64(i) / float64(len(samples)-1)
		curve.segment(px(t0), py(samples[i-1]), px(t1), py(samples[i]))
	}
	z.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{})

	if caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(ink),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, basicfont.Face7x13.Ascent+2),
		}
		d.DrawString(caption)
	}
	return img, nil
}

// PNG encodes Image(f, size, caption) to w.
func PNG(f easing.Func, size int, caption string, w io.Writer) error {
	img, err := Image(f, size, caption)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
