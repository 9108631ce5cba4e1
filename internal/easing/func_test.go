package easing_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/refsheet/internal/easing"
)

const tolerance = 1e-9

func sampleTimes(n int) []float64 {
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
	}
	return ts
}

var _ = Describe("Func", func() {
	DescribeTable("primitive endpoints",
		func(f easing.Func) {
			Expect(f.At(0)).To(BeNumerically("~", 0, tolerance))
			Expect(f.At(1)).To(BeNumerically("~", 1, tolerance))
		},
		Entry("identity", easing.Identity()),
		Entry("power in 2", easing.PowerIn(2)),
		Entry("power in 0.5", easing.PowerIn(0.5)),
		Entry("power out 2", easing.PowerOut(2)),
		Entry("power out 3", easing.PowerOut(3)),
		Entry("smoothstep", easing.Smoothstep()),
		Entry("smootherstep", easing.Smootherstep()),
		Entry("cosine in out", easing.CosineInOut()),
		Entry("circle in", easing.CircleIn()),
		Entry("circle out", easing.CircleOut()),
		Entry("spring underdamped", easing.Spring(12, 0.5)),
		Entry("spring critical", easing.Spring(10, 1)),
		Entry("spring overdamped", easing.Spring(8, 2)),
	)

	DescribeTable("primitive formulas",
		func(f easing.Func, t, want float64) {
			Expect(f.At(t)).To(BeNumerically("~", want, tolerance))
		},
		Entry("identity", easing.Identity(), 0.3, 0.3),
		Entry("power in", easing.PowerIn(2), 0.5, 0.25),
		Entry("power out", easing.PowerOut(2), 0.5, 0.75),
		Entry("smoothstep", easing.Smoothstep(), 0.25, 0.15625),
		Entry("smootherstep", easing.Smootherstep(), 0.5, 0.5),
		Entry("smootherstep quarter", easing.Smootherstep(), 0.25, 0.103515625),
		Entry("cosine in out", easing.CosineInOut(), 0.5, 0.5),
		Entry("circle in", easing.CircleIn(), 0.6, 0.2),
		Entry("circle out", easing.CircleOut(), 0.4, 0.8),
	)

	Describe("Concat", func() {
		It("preserves the endpoints and passes through the midpoint", func() {
			c := easing.Concat(easing.PowerIn(2), easing.PowerOut(2))
			Expect(c.At(0)).To(BeNumerically("~", 0, tolerance))
			Expect(c.At(0.5)).To(BeNumerically("~", 0.5, tolerance))
			Expect(c.At(1)).To(BeNumerically("~", 1, tolerance))
		})

		It("takes the second operand at exactly one half", func() {
			// b starts at -0.5, so the else branch yields 0.25 instead of 0.5.
			c := easing.Concat(easing.Identity(), easing.SecondHalf(easing.PowerIn(2)))
			Expect(c.At(0.5)).To(BeNumerically("~", 0.25, tolerance))
		})

		It("equals identity when both halves are identity", func() {
			c := easing.Concat(easing.Identity(), easing.Identity())
			for _, t := range sampleTimes(64) {
				Expect(c.At(t)).To(BeNumerically("~", t, tolerance))
			}
		})

		It("scales each operand into its half", func() {
			c := easing.Concat(easing.PowerIn(2), easing.PowerOut(2))
			Expect(c.At(0.25)).To(BeNumerically("~", 0.125, tolerance))
			Expect(c.At(0.75)).To(BeNumerically("~", 0.875, tolerance))
		})

		It("keeps private copies of its operands", func() {
			a := easing.PowerIn(2)
			c := easing.Concat(a, a)
			a.Exponent = 5
			Expect(c.At(0.25)).To(BeNumerically("~", 0.125, tolerance))
		})
	})

	Describe("FirstHalf and SecondHalf", func() {
		It("rescales the first half of cosine in out", func() {
			cos := easing.CosineInOut()
			f := easing.FirstHalf(cos)
			for _, t := range sampleTimes(32) {
				Expect(f.At(t)).To(BeNumerically("~", cos.At(t/2)*2, tolerance))
			}
			Expect(f.At(0)).To(BeNumerically("~", 0, tolerance))
			Expect(f.At(1)).To(BeNumerically("~", 1, tolerance))
		})

		It("rescales the second half of cosine in out", func() {
			cos := easing.CosineInOut()
			f := easing.SecondHalf(cos)
			for _, t := range sampleTimes(32) {
				Expect(f.At(t)).To(BeNumerically("~", cos.At(t/2+0.5)*2-1, tolerance))
			}
			Expect(f.At(0)).To(BeNumerically("~", 0, tolerance))
			Expect(f.At(1)).To(BeNumerically("~", 1, tolerance))
		})

		It("recovers the halves of a concatenation", func() {
			c := easing.Concat(easing.PowerIn(3), easing.CircleOut())
			first := easing.FirstHalf(c)
			second := easing.SecondHalf(c)
			for _, t := range sampleTimes(16)[:16] {
				Expect(first.At(t)).To(BeNumerically("~", easing.PowerIn(3).At(t), tolerance))
			}
			for _, t := range sampleTimes(16) {
				Expect(second.At(t)).To(BeNumerically("~", easing.CircleOut().At(t), tolerance))
			}
		})
	})

	DescribeTable("monotonic curves",
		func(f easing.Func) {
			prev := f.At(0)
			for _, t := range sampleTimes(200) {
				v := f.At(t)
				Expect(v).To(BeNumerically(">=", prev))
				prev = v
			}
		},
		Entry("power in 2", easing.PowerIn(2)),
		Entry("power out 2", easing.PowerOut(2)),
		Entry("smootherstep", easing.Smootherstep()),
		Entry("critically damped spring", easing.Spring(10, 1)),
	)

	It("lets an underdamped spring overshoot", func() {
		peak := 0.0
		for _, v := range easing.Samples(easing.Spring(12, 0.5), 101) {
			peak = math.Max(peak, v)
		}
		Expect(peak).To(BeNumerically(">", 1))
	})

	Describe("Validate", func() {
		DescribeTable("rejects bad parameters",
			func(f easing.Func) {
				Expect(f.Validate()).To(MatchError(easing.ErrParameter))
			},
			Entry("zero exponent", easing.PowerIn(0)),
			Entry("negative exponent", easing.PowerOut(-1)),
			Entry("NaN exponent", easing.PowerIn(math.NaN())),
			Entry("zero frequency", easing.Spring(0, 0.5)),
			Entry("negative damping", easing.Spring(10, -1)),
			Entry("spring at rest at t = 1", easing.Spring(2*math.Pi, 0)),
			Entry("nested bad operand", easing.Concat(easing.Identity(), easing.PowerIn(0))),
			Entry("half of bad operand", easing.FirstHalf(easing.PowerOut(0))),
			Entry("concat without operands", easing.Func{Kind: easing.KindConcat}),
		)

		It("accepts well formed curves", func() {
			Expect(easing.Concat(easing.CircleIn(), easing.SecondHalf(easing.CosineInOut())).Validate()).To(Succeed())
		})
	})

	It("renders an expression", func() {
		Expect(easing.Concat(easing.PowerIn(2), easing.PowerOut(2)).String()).To(Equal("concat(pow-in(2), pow-out(2))"))
		Expect(easing.FirstHalf(easing.CosineInOut()).String()).To(Equal("first-half(cosine-in-out)"))
		Expect(easing.Spring(12, 0.5).String()).To(Equal("spring(12, 0.5)"))
		Expect(easing.Identity().String()).To(Equal("linear"))
	})

	It("samples evenly spaced times", func() {
		Expect(easing.Samples(easing.Identity(), 5)).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
		Expect(easing.Samples(easing.Identity(), 1)).To(BeNil())
	})
})
