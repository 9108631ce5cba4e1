// Package fiducial renders square fiducial markers.
//
// The xt16bfm style encodes 16 bits as eight border tiles of a 3x3 grid,
// two bits per tile selecting which corner of the tile is filled. A code
// and its rotations and mirror images describe the same physical marker,
// so only the smallest member of each group is drawn; see [Canonicalize].
package fiducial

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/refsheet/internal/svgdoc"
)

const (
	markerSize = 576
	tileSize   = 144
	tileOrigin = 72
)

var (
	rotatePerm = [8]int{6, 7, 0, 1, 2, 3, 4, 5}
	mirrorPerm = [8]int{2, 1, 0, 7, 6, 5, 4, 3}

	// tile position index -> grid cell, clockwise from the top left
	tileCells = [8][2]int{
		{0, 0}, {1, 0}, {2, 0}, {2, 1},
		{2, 2}, {1, 2}, {0, 2}, {0, 1},
	}
)

func tile(v uint16, i int) uint16 {
	return (v >> (i * 2)) & 0b11
}

// rotate turns the marker a quarter turn.
func rotate(v uint16) uint16 {
	var out uint16
	for a, b := range rotatePerm {
		out |= ((tile(v, b) + 1) & 0b11) << (a * 2)
	}
	return out
}

// mirror flips the marker across its vertical axis.
func mirror(v uint16) uint16 {
	var out uint16
	for a, b := range mirrorPerm {
		out |= (tile(v, b) ^ 0b01) << (a * 2)
	}
	return out
}

// Variants returns the eight rotations and reflections of v, starting with v.
func Variants(v uint16) [8]uint16 {
	m := mirror(v)
	return [8]uint16{
		v, rotate(v), rotate(rotate(v)), rotate(rotate(rotate(v))),
		m, rotate(m), rotate(rotate(m)), rotate(rotate(rotate(m))),
	}
}

// Canonicalize returns the smallest code describing the same marker as v.
func Canonicalize(v uint16) uint16 {
	vs := Variants(v)
	lo := vs[0]
	for _, x := range vs[1:] {
		if x < lo {
			lo = x
		}
	}
	return lo
}

func IsCanonical(v uint16) bool {
	return Canonicalize(v) == v
}

// CanonicalValues lists every canonical code in ascending order.
func CanonicalValues() []uint16 {
	var out []uint16
	for v := 0; v <= 0xFFFF; v++ {
		if IsCanonical(uint16(v)) {
			out = append(out, uint16(v))
		}
	}
	return out
}

// tileTriangle returns the filled half of the tile at grid cell (u, w).
func tileTriangle(u, w int, kind uint16) (xs, ys []int) {
	x0 := tileOrigin + u*tileSize
	y0 := tileOrigin + w*tileSize
	x1 := x0 + tileSize
	y1 := y0 + tileSize
	switch kind {
	case 0:
		return []int{x0, x1, x0}, []int{y0, y0, y1}
	case 1:
		return []int{x0, x1, x1}, []int{y0, y0, y1}
	case 2:
		return []int{x1, x1, x0}, []int{y0, y1, y1}
	default:
		return []int{x0, x1, x0}, []int{y0, y1, y1}
	}
}

// XT16BFM draws the marker for v. Non-canonical codes produce the bare
// frame without tiles, so every physical marker is printed at most once.
func XT16BFM(v uint16) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(markerSize, markerSize, 0, 0, markerSize, markerSize)
	canvas.Style("text/css", svgdoc.MarkerCSS)
	canvas.Gid(fmt.Sprintf("fiducial_xt16bfm_%d", v))

	bg := `class="` + svgdoc.ClassBackground + `"`
	fg := `class="` + svgdoc.ClassForeground + `"`
	canvas.Rect(0, 0, 576, 576, bg)
	canvas.Rect(36, 36, 504, 504, fg)
	canvas.Rect(54, 54, 468, 468, bg)
	canvas.Rect(234, 234, 108, 108, fg)
	canvas.Rect(252, 252, 72, 72, bg)
	canvas.Rect(270, 270, 36, 36, fg)

	if IsCanonical(v) {
		for i, cell := range tileCells {
			xs, ys := tileTriangle(cell[0], cell[1], tile(v, i))
			canvas.Polygon(xs, ys, fg)
		}
	}

	canvas.Gend()
	canvas.End()
	return buf.Bytes()
}
