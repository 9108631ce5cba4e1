package fiducial

import (
	"errors"
	"fmt"

	"github.com/san-kum/refsheet/internal/catalog"
)

var (
	ErrUnknownStyle = errors.New("fiducial: unknown style")
	ErrValue        = errors.New("fiducial: value out of range")
)

// Renderer draws the marker for a code.
type Renderer func(v uint16) []byte

// Styles returns the marker style catalog.
func Styles() *catalog.Catalog[Renderer] {
	c := catalog.New[Renderer]("fiducial style", ErrUnknownStyle)
	c.Register("xt16bfm", XT16BFM)
	return c
}

// Render draws value with the named style. value must fit in 16 bits.
func Render(styles *catalog.Catalog[Renderer], style string, value int) ([]byte, error) {
	r, err := styles.Lookup(style)
	if err != nil {
		return nil, err
	}
	if value < 0 || value > 0xFFFF {
		return nil, fmt.Errorf("%w: %d not in [0, 65535]", ErrValue, value)
	}
	return r(uint16(value)), nil
}

// Path is the output path of a marker relative to the output root.
func Path(style string, v uint16) string {
	return fmt.Sprintf("markers/fiducial/%s/fiducial-%s-%05d.svg", style, style, v)
}
