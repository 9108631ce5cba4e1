// Package bpm relates animation frame rates to musical tempo.
//
// At fps frames per second, a beat lasting n frames plays at
// 60 * fps / n beats per minute. Calculate lists those tempos for
// n = 2*fps down to 1, keeping the ones a filter accepts.
package bpm

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/san-kum/refsheet/internal/catalog"
)

var (
	ErrUnknownFilter = errors.New("bpm: unknown filter")
	ErrUnknownFormat = errors.New("bpm: unknown output format")
	ErrFPS           = errors.New("bpm: fps must be positive")
)

// Result is one tempo reachable with a whole number of frames per beat.
type Result struct {
	BPM           float64
	FramesPerBeat int
}

// Filter decides whether a tempo is listed.
type Filter func(bpm float64) bool

// StandardTempos are the metronome markings.
var StandardTempos = []float64{
	40, 42, 44, 46, 48, 50, 52, 54, 56, 58,
	60, 63, 66, 69, 72, 76, 80, 84, 88, 92,
	96, 100, 104, 108, 112, 116, 120, 126, 132, 138,
	144, 152, 160, 168, 176, 184, 192, 200, 208, 216,
	224, 232, 240,
}

// Filters returns the filter catalog: standard, round, none.
func Filters() *catalog.Catalog[Filter] {
	c := catalog.New[Filter]("bpm filter", ErrUnknownFilter)
	c.Register("standard", func(b float64) bool { return slices.Contains(StandardTempos, b) })
	c.Register("round", func(b float64) bool { return b == math.Trunc(b) })
	c.Register("none", func(float64) bool { return true })
	return c
}

// Calculate lists tempos for fps, slowest first.
func Calculate(fps int, filter Filter) ([]Result, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrFPS, fps)
	}
	var out []Result
	for fpb := fps * 2; fpb > 0; fpb-- {
		b := 60 * (float64(fps) / float64(fpb))
		if filter(b) {
			out = append(out, Result{BPM: b, FramesPerBeat: fpb})
		}
	}
	return out, nil
}
