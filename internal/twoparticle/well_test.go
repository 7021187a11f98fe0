package twoparticle

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quantstat/internal/quant"
)

func mustState(n int, l, x float64) float64 {
	GinkgoHelper()
	v, err := SingleParticleState(n, l, x)
	Expect(err).NotTo(HaveOccurred())
	return v
}

func mustSym(x1, x2, l float64, lv Levels) float64 {
	GinkgoHelper()
	v, err := SymmetricJointAmplitude(x1, x2, l, lv)
	Expect(err).NotTo(HaveOccurred())
	return v
}

func mustAnti(x1, x2, l float64, lv Levels) float64 {
	GinkgoHelper()
	v, err := AntisymmetricJointAmplitude(x1, x2, l, lv)
	Expect(err).NotTo(HaveOccurred())
	return v
}

func mustField(fn func(quant.Grid, float64, Levels) (*mat.Dense, error), g quant.Grid, l float64, lv Levels) *mat.Dense {
	GinkgoHelper()
	f, err := fn(g, l, lv)
	Expect(err).NotTo(HaveOccurred())
	return f
}

var _ = Describe("SingleParticleState", func() {
	It("vanishes at both walls", func() {
		for _, n := range []int{1, 2, 5} {
			Expect(mustState(n, 2, 0)).To(BeZero())
			Expect(mustState(n, 2, 2)).To(BeNumerically("~", 0, 1e-12))
		}
	})

	It("peaks at the centre for the ground state", func() {
		Expect(mustState(1, 1, 0.5)).To(BeNumerically("~", math.Sqrt2, 1e-12))
	})

	It("maps the scalar formula over a vector", func() {
		xs := quant.Linspace(0, 1, 17)
		ys, err := SingleParticleStates(2, 1, xs)
		Expect(err).NotTo(HaveOccurred())
		Expect(ys).To(HaveLen(len(xs)))
		for i, x := range xs {
			Expect(ys[i]).To(Equal(mustState(2, 1, x)))
		}
	})

	DescribeTable("rejects invalid inputs",
		func(n int, l float64) {
			_, err := SingleParticleState(n, l, 0.5)
			Expect(err).To(MatchError(quant.ErrInvalidParameter))

			ys, err := SingleParticleStates(n, l, quant.Linspace(0, 1, 5))
			Expect(err).To(MatchError(quant.ErrInvalidParameter))
			Expect(ys).To(BeNil())
		},
		Entry("zero length", 1, 0.0),
		Entry("negative length", 1, -1.0),
		Entry("zero level", 0, 1.0),
		Entry("negative level", -2, 1.0),
	)
})

var _ = Describe("NewGrid", func() {
	It("spans [0,L] inclusive on both axes", func() {
		g, err := NewGrid(2.5, 10)
		Expect(err).NotTo(HaveOccurred())

		r, c := g.Dims()
		Expect(r).To(Equal(10))
		Expect(c).To(Equal(10))
		Expect(g.X1.At(0, 0)).To(BeZero())
		Expect(g.X1.At(0, 9)).To(Equal(2.5))
		Expect(g.X2.At(9, 0)).To(Equal(2.5))
		Expect(g.X2.At(0, 9)).To(BeZero())
	})

	It("rejects a non-positive length", func() {
		_, err := NewGrid(0, 10)
		Expect(err).To(MatchError(quant.ErrInvalidParameter))
	})

	It("rejects an empty resolution", func() {
		_, err := NewGrid(1, 0)
		Expect(err).To(MatchError(quant.ErrInvalidParameter))
	})
})

var _ = Describe("ClassicalJointDensity", func() {
	It("is 1/L² everywhere on the grid", func() {
		g, _ := NewGrid(2, 25)
		f, err := ClassicalJointDensity(g.X1, g.X2, 2)
		Expect(err).NotTo(HaveOccurred())

		r, c := f.Dims()
		Expect(r).To(Equal(25))
		Expect(c).To(Equal(25))
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				Expect(f.At(i, j)).To(Equal(0.25))
			}
		}
	})

	DescribeTable("rejects a non-positive length",
		func(l float64) {
			g, _ := NewGrid(1, 5)
			f, err := ClassicalJointDensity(g.X1, g.X2, l)
			Expect(err).To(MatchError(quant.ErrInvalidParameter))
			Expect(f).To(BeNil())
		},
		Entry("zero", 0.0),
		Entry("negative", -1.0),
	)
})

var _ = Describe("Joint amplitudes", func() {
	var (
		lv  Levels
		rng *rand.Rand
	)

	BeforeEach(func() {
		lv = DefaultLevels()
		rng = rand.New(rand.NewSource(42))
	})

	It("is exchange symmetric for bosons", func() {
		for i := 0; i < 500; i++ {
			x1, x2 := rng.Float64(), rng.Float64()
			Expect(mustSym(x1, x2, 1, lv)).To(Equal(mustSym(x2, x1, 1, lv)))
		}
	})

	It("is exchange antisymmetric for fermions", func() {
		for i := 0; i < 500; i++ {
			x1, x2 := 3*rng.Float64(), 3*rng.Float64()
			Expect(mustAnti(x1, x2, 3, lv)).To(Equal(-mustAnti(x2, x1, 3, lv)))
		}
	})

	It("excludes fermions from coincident positions", func() {
		for _, x := range quant.Linspace(0, 1, 101) {
			Expect(mustAnti(x, x, 1, lv)).To(BeZero())
		}
	})

	It("matches the concrete midpoint example", func() {
		Expect(mustAnti(0.5, 0.5, 1, lv)).To(BeNumerically("~", 0, 1e-15))

		s := mustSym(0.5, 0.5, 1, lv)
		Expect(math.IsInf(s, 0) || math.IsNaN(s)).To(BeFalse())
		Expect(s).NotTo(BeZero())
	})

	It("returns signed amplitudes", func() {
		// ψ₁(0.25)ψ₂(0.75) < 0 while ψ₂(0.25)ψ₁(0.75) > 0.
		Expect(mustAnti(0.25, 0.75, 1, lv)).To(BeNumerically("<", 0))
	})

	It("honours custom level indices", func() {
		custom := Levels{N: 2, K: 3}
		expected := (mustState(2, 1, 0.2)*mustState(3, 1, 0.7) -
			mustState(3, 1, 0.2)*mustState(2, 1, 0.7)) / math.Sqrt2
		Expect(mustAnti(0.2, 0.7, 1, custom)).To(Equal(expected))
	})

	DescribeTable("rejects invalid wells",
		func(l float64, levels Levels) {
			g, _ := NewGrid(1, 5)

			_, err := SymmetricJointAmplitude(0.2, 0.3, l, levels)
			Expect(err).To(MatchError(quant.ErrInvalidParameter))
			_, err = AntisymmetricJointAmplitude(0.2, 0.3, l, levels)
			Expect(err).To(MatchError(quant.ErrInvalidParameter))

			f, err := SymmetricField(g, l, levels)
			Expect(err).To(MatchError(quant.ErrInvalidParameter))
			Expect(f).To(BeNil())
			f, err = AntisymmetricField(g, l, levels)
			Expect(err).To(MatchError(quant.ErrInvalidParameter))
			Expect(f).To(BeNil())
		},
		Entry("zero length", 0.0, DefaultLevels()),
		Entry("negative length", -1.0, DefaultLevels()),
		Entry("zero first level", 1.0, Levels{N: 0, K: 2}),
		Entry("negative second level", 1.0, Levels{N: 1, K: -1}),
	)
})

var _ = Describe("Fields", func() {
	It("keeps exchange properties on the grid", func() {
		g, _ := NewGrid(1, 40)
		lv := DefaultLevels()
		sym := mustField(SymmetricField, g, 1, lv)
		anti := mustField(AntisymmetricField, g, 1, lv)
		symSwapped := mustField(SymmetricField, g.Swapped(), 1, lv)
		antiSwapped := mustField(AntisymmetricField, g.Swapped(), 1, lv)

		for i := 0; i < 40; i++ {
			for j := 0; j < 40; j++ {
				Expect(sym.At(i, j)).To(Equal(symSwapped.At(i, j)))
				Expect(anti.At(i, j)).To(Equal(-antiSwapped.At(i, j)))
			}
			Expect(anti.At(i, i)).To(BeZero())
		}
	})

	It("squares amplitudes into non-negative densities", func() {
		g, _ := NewGrid(1, 20)
		amp := mustField(AntisymmetricField, g, 1, DefaultLevels())
		p := ProbabilityDensity(amp)
		for i := 0; i < 20; i++ {
			for j := 0; j < 20; j++ {
				Expect(p.At(i, j)).To(BeNumerically(">=", 0))
				Expect(p.At(i, j)).To(Equal(amp.At(i, j) * amp.At(i, j)))
			}
		}
	})
})

var _ = Describe("Well", func() {
	It("solves the default well", func() {
		f, err := DefaultWell().Solve()
		Expect(err).NotTo(HaveOccurred())

		r, c := f.Bosons.Dims()
		Expect(r).To(Equal(DefaultResolution))
		Expect(c).To(Equal(DefaultResolution))
		Expect(f.Classical.At(3, 7)).To(Equal(1.0))
		Expect(f.Fermions.At(50, 50)).To(BeZero())
	})

	DescribeTable("rejects invalid parameters",
		func(w Well) {
			_, err := w.Solve()
			Expect(err).To(MatchError(quant.ErrInvalidParameter))
		},
		Entry("zero length", Well{Length: 0, Resolution: 10, Levels: DefaultLevels()}),
		Entry("negative length", Well{Length: -1, Resolution: 10, Levels: DefaultLevels()}),
		Entry("zero resolution", Well{Length: 1, Resolution: 0, Levels: DefaultLevels()}),
		Entry("zero level", Well{Length: 1, Resolution: 10, Levels: Levels{N: 0, K: 2}}),
	)
})
