// Package numfmt renders floating point numbers as the canonical decimal
// text embedded in generated markup.
//
// A value is rounded to a fixed number of fractional digits (3 by default),
// then trailing zeros and a dangling decimal point are removed, so 288.0
// renders as "288" and 0.3333333 as "0.333". Ties round half away from zero
// on the shortest decimal representation of the float: 123.4565 renders as
// "123.457" and 0.1235 as "0.124", independent of binary representation
// artifacts. Negative zero, and negative values that round to zero, render
// as "0". The same input always produces the same text.
package numfmt

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultPrecision = 3

// ErrNonFinite indicates a NaN or infinite input.
var ErrNonFinite = errors.New("numfmt: non-finite value")

func Format(x float64) (string, error) {
	return FormatPrec(x, DefaultPrecision)
}

// FormatPrec formats x with at most prec fractional digits.
func FormatPrec(x float64, prec int) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", fmt.Errorf("%w: %v", ErrNonFinite, x)
	}
	if prec < 0 {
		prec = 0
	}
	if x == 0 {
		// also folds -0
		return "0", nil
	}
	return decimal.NewFromFloat(x).Round(int32(prec)).String(), nil
}

// MustFormat is like Format but panics on non-finite input. Use it where
// values are finite by construction (geometry derived from finite tables).
func MustFormat(x float64) string {
	s, err := Format(x)
	if err != nil {
		panic(err)
	}
	return s
}

// Formatter formats with a fixed precision.
type Formatter struct {
	Precision int
}

func New(prec int) Formatter {
	return Formatter{Precision: prec}
}

func (f Formatter) Format(x float64) (string, error) {
	return FormatPrec(x, f.Precision)
}

func (f Formatter) Must(x float64) string {
	s, err := FormatPrec(x, f.Precision)
	if err != nil {
		panic(err)
	}
	return s
}

// Pair renders "x,y" as used in SVG point lists.
func (f Formatter) Pair(x, y float64) string {
	return f.Must(x) + "," + f.Must(y)
}

// Join renders values separated by single spaces.
func (f Formatter) Join(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = f.Must(v)
	}
	return strings.Join(parts, " ")
}
