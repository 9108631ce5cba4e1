package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/refsheet/internal/easing"
)

// Braille patterns are 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of Braille cells addressed in dots, two per cell
// horizontally and four vertically.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// DrawLine uses Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Braille draws f on a cols x rows cell canvas, one sample per dot column.
func Braille(f easing.Func, cols, rows int) (string, error) {
	if cols < 1 || rows < 1 {
		return "", fmt.Errorf("preview: braille needs at least one cell")
	}
	c := NewCanvas(cols, rows)
	w, h := cols*2, rows*4
	samples := easing.Samples(f, max(w, minSamples))
	lo, hi := bounds(samples)

	y := func(v float64) int {
		return int(math.Round((hi - v) / (hi - lo) * float64(h-1)))
	}
	prevX, prevY := 0, y(samples[0])
	for i := 1; i < len(samples); i++ {
		x := int(math.Round(float64(i) / float64(len(samples)-1) * float64(w-1)))
		cy := y(samples[i])
		c.DrawLine(prevX, prevY, x, cy)
		prevX, prevY = x, cy
	}
	return c.String(), nil
}
