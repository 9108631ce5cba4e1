package easing_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/refsheet/internal/catalog"
	"github.com/san-kum/refsheet/internal/easing"
)

var _ = Describe("Registry", func() {
	var reg *easing.Registry

	BeforeEach(func() {
		reg = easing.NewRegistry(easing.DefaultOptions())
	})

	It("lists the classic ruler set first", func() {
		Expect(reg.Names()[:5]).To(Equal([]string{"linear", "smoothstep", "ease-in", "ease-out", "ease-in-out"}))
		Expect(reg.Names()).To(ContainElements("sine-in", "sine-out", "circle-in-out", "spring"))
	})

	It("enumerates in a stable order", func() {
		first := reg.Names()
		Expect(reg.Names()).To(Equal(first))
		Expect(reg.Names()).To(Equal(first))
	})

	It("keeps every registered curve anchored at 0 and 1", func() {
		for _, name := range reg.Names() {
			v0, err := reg.Evaluate(name, 0)
			Expect(err).NotTo(HaveOccurred())
			v1, err := reg.Evaluate(name, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(v0).To(BeNumerically("~", 0, tolerance), name)
			Expect(v1).To(BeNumerically("~", 1, tolerance), name)
		}
	})

	It("evaluates by name", func() {
		v, err := reg.Evaluate("linear", 0.25)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(0.25))

		v, err = reg.Evaluate("smoothstep", 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(0.5))

		v, err = reg.Evaluate("ease-in-out", 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 0.5, tolerance))
	})

	It("reports unknown names with the available ones", func() {
		_, err := reg.Evaluate("nonexistent", 0.5)
		Expect(err).To(MatchError(easing.ErrUnknownName))

		var nf *catalog.NotFoundError
		Expect(errors.As(err, &nf)).To(BeTrue())
		Expect(nf.Available).To(Equal(reg.Names()))
		Expect(err.Error()).To(ContainSubstring("ease-in-out"))
	})

	DescribeTable("rejects t outside the unit interval",
		func(t float64) {
			_, err := reg.Evaluate("linear", t)
			Expect(err).To(MatchError(easing.ErrDomain))

			var de *easing.DomainError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Name).To(Equal("linear"))
		},
		Entry("negative", -0.1),
		Entry("above one", 1.1),
		Entry("NaN", math.NaN()),
		Entry("infinite", math.Inf(1)),
	)

	It("registers and overwrites curves", func() {
		Expect(reg.Register("custom", easing.Concat(easing.CircleIn(), easing.Smoothstep()))).To(Succeed())
		Expect(reg.Names()[reg.Len()-1]).To(Equal("custom"))

		Expect(reg.Register("linear", easing.PowerIn(2))).To(Succeed())
		Expect(reg.Names()[0]).To(Equal("linear"))
		v, err := reg.Evaluate("linear", 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(0.25))
	})

	It("refuses invalid curves", func() {
		Expect(reg.Register("bad", easing.PowerIn(0))).To(MatchError(easing.ErrParameter))
		Expect(reg.Register("", easing.Identity())).To(MatchError(easing.ErrParameter))
		_, err := reg.Lookup("bad")
		Expect(err).To(MatchError(easing.ErrUnknownName))
	})

	It("omits the spring when its options are invalid", func() {
		r := easing.NewRegistry(easing.Options{SpringFrequency: 0, SpringDamping: 0.5})
		Expect(r.Names()).NotTo(ContainElement("spring"))
	})

	It("samples by name", func() {
		s, err := reg.Sample("linear", 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal([]float64{0, 0.5, 1}))

		_, err = reg.Sample("linear", 1)
		Expect(err).To(MatchError(easing.ErrParameter))

		_, err = reg.Sample("missing", 3)
		Expect(err).To(MatchError(easing.ErrUnknownName))
	})

	It("selects subsets in the requested order", func() {
		sel, err := reg.Select([]string{"ease-out", "linear"})
		Expect(err).NotTo(HaveOccurred())
		Expect(sel).To(HaveLen(2))
		Expect(sel[0].Name).To(Equal("ease-out"))
		Expect(sel[1].Func).To(Equal(easing.Identity()))

		all, err := reg.Select(nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(reg.Len()))

		_, err = reg.Select([]string{"linear", "nope"})
		Expect(err).To(MatchError(easing.ErrUnknownName))
	})
})
