// Package hbr draws head-body ratio guides: character proportion sheets
// measured in head heights.
package hbr

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/refsheet/internal/catalog"
)

//go:embed presets.yaml
var defaultPresetsYAML []byte

var (
	ErrRatioCount    = errors.New("hbr: expected 10 ratios")
	ErrUnknownStyle  = errors.New("hbr: unknown guide style")
	ErrUnknownPreset = errors.New("hbr: unknown preset")
)

// Ratios describe a figure relative to its head height.
type Ratios struct {
	HeadWidth       float64
	ShoulderWidth   float64
	WaistWidth      float64
	HipWidth        float64
	FeetWidth       float64
	FeetSeparation  float64
	NeckLength      float64
	UpperBodyLength float64
	LowerBodyLength float64
	LegsLength      float64
}

const ratioCount = 10

// ParseRatios takes the ratios in field order.
func ParseRatios(v []float64) (Ratios, error) {
	if len(v) != ratioCount {
		return Ratios{}, fmt.Errorf("%w, got %d", ErrRatioCount, len(v))
	}
	return Ratios{
		HeadWidth:       v[0],
		ShoulderWidth:   v[1],
		WaistWidth:      v[2],
		HipWidth:        v[3],
		FeetWidth:       v[4],
		FeetSeparation:  v[5],
		NeckLength:      v[6],
		UpperBodyLength: v[7],
		LowerBodyLength: v[8],
		LegsLength:      v[9],
	}, nil
}

func (r Ratios) Slice() []float64 {
	return []float64{
		r.HeadWidth, r.ShoulderWidth, r.WaistWidth, r.HipWidth, r.FeetWidth,
		r.FeetSeparation, r.NeckLength, r.UpperBodyLength, r.LowerBodyLength, r.LegsLength,
	}
}

// Heads is the figure height in head units.
func (r Ratios) Heads() float64 {
	return 1 + r.NeckLength + r.UpperBodyLength + r.LowerBodyLength + r.LegsLength
}

// Fraction is a ratio written either as a number or as "a/b".
type Fraction float64

func (f *Fraction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: ratio must be a scalar", value.Line)
	}
	v, err := ParseFraction(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = Fraction(v)
	return nil
}

// ParseFraction parses "0.65", "1/3" or "11/3".
func ParseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("bad ratio %q: %w", s, err)
	}
	if !ok {
		return n, nil
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, fmt.Errorf("bad ratio %q: %w", s, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("bad ratio %q: zero denominator", s)
	}
	return n / d, nil
}

type presetDTO struct {
	Name   string     `yaml:"name"`
	Ratios []Fraction `yaml:"ratios"`
}

// LoadPresets decodes a YAML preset list. Order is preserved.
func LoadPresets(data []byte) (*catalog.Catalog[Ratios], error) {
	var dtos []presetDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("hbr presets: %w", err)
	}
	c := catalog.New[Ratios]("hbr preset", ErrUnknownPreset)
	for _, dto := range dtos {
		if dto.Name == "" {
			return nil, fmt.Errorf("hbr presets: entry without a name")
		}
		vals := make([]float64, len(dto.Ratios))
		for i, f := range dto.Ratios {
			vals[i] = float64(f)
		}
		r, err := ParseRatios(vals)
		if err != nil {
			return nil, fmt.Errorf("hbr preset %s: %w", dto.Name, err)
		}
		c.Register(dto.Name, r)
	}
	return c, nil
}

// DefaultPresets returns the built-in presets.
func DefaultPresets() *catalog.Catalog[Ratios] {
	c, err := LoadPresets(defaultPresetsYAML)
	if err != nil {
		panic(err)
	}
	return c
}
