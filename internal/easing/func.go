package easing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/harmonica"
)

// Kind tags the variant held by a [Func].
type Kind int

const (
	KindIdentity Kind = iota
	KindPowerIn
	KindPowerOut
	KindSmoothstep
	KindSmootherstep
	KindCosineInOut
	KindCircleIn
	KindCircleOut
	KindSpring
	KindConcat
	KindFirstHalf
	KindSecondHalf
)

var kindNames = [...]string{
	KindIdentity:     "linear",
	KindPowerIn:      "pow-in",
	KindPowerOut:     "pow-out",
	KindSmoothstep:   "smoothstep",
	KindSmootherstep: "smootherstep",
	KindCosineInOut:  "cosine-in-out",
	KindCircleIn:     "circle-in",
	KindCircleOut:    "circle-out",
	KindSpring:       "spring",
	KindConcat:       "concat",
	KindFirstHalf:    "first-half",
	KindSecondHalf:   "second-half",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Func is an easing curve. The zero value is the identity curve.
//
// Only the fields relevant to Kind are meaningful. Combinator operands are
// private copies, so a Func never changes after construction.
type Func struct {
	Kind Kind

	// Exponent of PowerIn and PowerOut.
	Exponent float64

	// Angular frequency and damping ratio of Spring.
	Frequency float64
	Damping   float64

	// Operands of Concat (A, B) and of FirstHalf / SecondHalf (A).
	A *Func
	B *Func
}

func Identity() Func { return Func{Kind: KindIdentity} }

// PowerIn returns t^exponent. exponent must be positive.
func PowerIn(exponent float64) Func { return Func{Kind: KindPowerIn, Exponent: exponent} }

// PowerOut returns 1 - (1-t)^exponent. exponent must be positive.
func PowerOut(exponent float64) Func { return Func{Kind: KindPowerOut, Exponent: exponent} }

func Smoothstep() Func   { return Func{Kind: KindSmoothstep} }
func Smootherstep() Func { return Func{Kind: KindSmootherstep} }
func CosineInOut() Func  { return Func{Kind: KindCosineInOut} }
func CircleIn() Func     { return Func{Kind: KindCircleIn} }
func CircleOut() Func    { return Func{Kind: KindCircleOut} }

// Spring returns a damped spring released at rest from 0 toward 1, run for
// one unit of time and normalized so that it ends exactly at 1.
// frequency is the angular frequency (must be positive); damping is the
// damping ratio (must not be negative, below 1 overshoots).
func Spring(frequency, damping float64) Func {
	return Func{Kind: KindSpring, Frequency: frequency, Damping: damping}
}

// Concat runs a over the first half of the domain and b over the second,
// each scaled to half of the range. t = 0.5 belongs to b.
func Concat(a, b Func) Func {
	return Func{Kind: KindConcat, A: &a, B: &b}
}

// FirstHalf restricts f to [0, 0.5] and rescales the result to [0, 1].
// It only preserves f(1) = 1 when f(0.5) = 0.5.
func FirstHalf(f Func) Func {
	return Func{Kind: KindFirstHalf, A: &f}
}

// SecondHalf restricts f to [0.5, 1] and rescales the result to [0, 1].
// It only preserves f(0) = 0 when f(0.5) = 0.5.
func SecondHalf(f Func) Func {
	return Func{Kind: KindSecondHalf, A: &f}
}

// At evaluates the curve at t. No clamping is applied.
func (f Func) At(t float64) float64 {
	switch f.Kind {
	case KindIdentity:
		return t
	case KindPowerIn:
		return math.Pow(t, f.Exponent)
	case KindPowerOut:
		return 1 - math.Pow(1-t, f.Exponent)
	case KindSmoothstep:
		return t * t * (3 - 2*t)
	case KindSmootherstep:
		return t * t * t * (t*(t*6-15) + 10)
	case KindCosineInOut:
		return (1 - math.Cos(t*math.Pi)) / 2
	case KindCircleIn:
		return 1 - math.Sqrt(1-t*t)
	case KindCircleOut:
		return math.Sqrt(1 - (t-1)*(t-1))
	case KindSpring:
		return springPosition(f.Frequency, f.Damping, t) / springPosition(f.Frequency, f.Damping, 1)
	case KindConcat:
		if t < 0.5 {
			return f.A.At(t*2) / 2
		}
		return 0.5 + f.B.At(t*2-1)/2
	case KindFirstHalf:
		return f.A.At(t/2) * 2
	case KindSecondHalf:
		return f.A.At(t/2+0.5)*2 - 1
	default:
		panic(fmt.Sprintf("easing: unhandled kind %v", f.Kind))
	}
}

// springPosition is the exact position after elapsed units of time.
func springPosition(frequency, damping, elapsed float64) float64 {
	s := harmonica.NewSpring(elapsed, frequency, damping)
	pos, _ := s.Update(0, 0, 1)
	return pos
}

// Validate reports parameters that would break the f(0) = 0, f(1) = 1
// contract or produce NaN.
func (f Func) Validate() error {
	switch f.Kind {
	case KindPowerIn, KindPowerOut:
		if !(f.Exponent > 0) || math.IsInf(f.Exponent, 0) {
			return fmt.Errorf("%w: exponent %g must be positive", ErrParameter, f.Exponent)
		}
	case KindSpring:
		if !(f.Frequency > 0) || math.IsInf(f.Frequency, 0) {
			return fmt.Errorf("%w: spring frequency %g must be positive", ErrParameter, f.Frequency)
		}
		if !(f.Damping >= 0) || math.IsInf(f.Damping, 0) {
			return fmt.Errorf("%w: spring damping %g must not be negative", ErrParameter, f.Damping)
		}
		if end := springPosition(f.Frequency, f.Damping, 1); math.Abs(end) < 1e-9 || math.IsNaN(end) {
			return fmt.Errorf("%w: spring(%s, %s) is back at rest at t = 1", ErrParameter, g(f.Frequency), g(f.Damping))
		}
	case KindConcat:
		if f.A == nil || f.B == nil {
			return fmt.Errorf("%w: concat needs two operands", ErrParameter)
		}
		if err := f.A.Validate(); err != nil {
			return err
		}
		return f.B.Validate()
	case KindFirstHalf, KindSecondHalf:
		if f.A == nil {
			return fmt.Errorf("%w: %v needs an operand", ErrParameter, f.Kind)
		}
		return f.A.Validate()
	case KindIdentity, KindSmoothstep, KindSmootherstep, KindCosineInOut, KindCircleIn, KindCircleOut:
	default:
		return fmt.Errorf("%w: unknown kind %v", ErrParameter, f.Kind)
	}
	return nil
}

// String renders the curve as an expression, e.g. "concat(pow-in(2), pow-out(2))".
func (f Func) String() string {
	switch f.Kind {
	case KindPowerIn, KindPowerOut:
		return fmt.Sprintf("%v(%s)", f.Kind, g(f.Exponent))
	case KindSpring:
		return fmt.Sprintf("spring(%s, %s)", g(f.Frequency), g(f.Damping))
	case KindConcat:
		return fmt.Sprintf("concat(%v, %v)", f.A, f.B)
	case KindFirstHalf, KindSecondHalf:
		return fmt.Sprintf("%v(%v)", f.Kind, f.A)
	default:
		return f.Kind.String()
	}
}

func g(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Samples evaluates f at n evenly spaced times i/(n-1), i = 0..n-1.
// It returns nil for n < 2.
func Samples(f Func, n int) []float64 {
	if n < 2 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f.At(float64(i) / float64(n-1))
	}
	return out
}
