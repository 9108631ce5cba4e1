// Package preview renders easing curves for quick inspection: as an
// ASCII chart, as a Braille dot plot, or as a PNG image.
package preview

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/refsheet/internal/easing"
)

const minSamples = 2

// Plot draws f as an asciigraph chart with width samples.
func Plot(f easing.Func, width, height int, caption string) (string, error) {
	if width < minSamples || height < 1 {
		return "", fmt.Errorf("preview: plot needs width >= %d and height >= 1", minSamples)
	}
	data := easing.Samples(f, width)
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(data, opts...), nil
}

// bounds returns the value range of samples widened to include [0, 1].
func bounds(samples []float64) (lo, hi float64) {
	lo, hi = 0, 1
	for _, v := range samples {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
