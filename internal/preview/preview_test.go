package preview

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/refsheet/internal/easing"
)

func TestPlot(t *testing.T) {
	out, err := Plot(easing.Identity(), 40, 8, "linear")
	require.NoError(t, err)
	assert.Contains(t, out, "linear")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "0.00")

	_, err = Plot(easing.Identity(), 1, 8, "")
	assert.Error(t, err)
	_, err = Plot(easing.Identity(), 10, 0, "")
	assert.Error(t, err)
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(100, 0)
	assert.Equal(t, "⠁⢀\n", c.String())
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(1, 1)
	c.DrawLine(0, 0, 0, 3)
	assert.Equal(t, "⡇\n", c.String())
}

func TestBraille(t *testing.T) {
	out, err := Braille(easing.Identity(), 10, 3)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Equal(t, 10, utf8.RuneCountInString(l))
	}
	// linear starts bottom left and ends top right
	first, _ := utf8.DecodeRuneInString(lines[2])
	assert.NotEqual(t, rune(brailleBlank), first)
	last := []rune(lines[0])[9]
	assert.NotEqual(t, rune(brailleBlank), last)

	_, err = Braille(easing.Identity(), 0, 3)
	assert.Error(t, err)
}

func TestBoundsIncludeUnitRange(t *testing.T) {
	lo, hi := bounds([]float64{0.2, 0.5})
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	lo, hi = bounds([]float64{-0.1, 1.3})
	assert.Equal(t, -0.1, lo)
	assert.Equal(t, 1.3, hi)
}

func TestImage(t *testing.T) {
	img, err := Image(easing.Identity(), 100, "")
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())

	// corner is paper, the curve through the center is inked
	assert.Equal(t, paper, img.RGBAAt(1, 1))
	c := img.RGBAAt(49, 50)
	assert.Less(t, int(c.R), 0x80)

	_, err = Image(easing.Identity(), 8, "")
	assert.Error(t, err)
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(easing.Spring(12, 0.5), 64, "spring", &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}
