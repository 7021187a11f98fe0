package twoparticle

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quantstat/internal/quant"
)

const (
	DefaultLength     = 1.0
	DefaultResolution = 100
)

// Levels are the single-particle quantum numbers occupied by the pair.
type Levels struct {
	N, K int
}

// DefaultLevels is the ground plus first excited state.
func DefaultLevels() Levels { return Levels{N: 1, K: 2} }

func (lv Levels) Validate() error {
	if err := quant.AtLeast("level_n", lv.N, 1); err != nil {
		return err
	}
	return quant.AtLeast("level_k", lv.K, 1)
}

// Well is one problem instance: a box of the given length sampled on a
// Resolution×Resolution grid.
type Well struct {
	Length     float64
	Resolution int
	Levels     Levels
}

func DefaultWell() Well {
	return Well{Length: DefaultLength, Resolution: DefaultResolution, Levels: DefaultLevels()}
}

func (w Well) Validate() error {
	if err := quant.Positive("length", w.Length); err != nil {
		return err
	}
	if err := quant.AtLeast("resolution", w.Resolution, 1); err != nil {
		return err
	}
	return w.Levels.Validate()
}

// SingleParticleState returns ψ_n(x) = √(2/L)·sin(nπx/L). A level below one
// or a non-positive length is rejected with quant.ErrInvalidParameter.
func SingleParticleState(n int, l, x float64) (float64, error) {
	if err := checkLevel(n, l); err != nil {
		return 0, err
	}
	return psi(n, l, x), nil
}

// SingleParticleStates evaluates ψ_n at every position in xs.
func SingleParticleStates(n int, l float64, xs quant.Vector) (quant.Vector, error) {
	if err := checkLevel(n, l); err != nil {
		return nil, err
	}
	return quant.Map(xs, func(x float64) float64 {
		return psi(n, l, x)
	}), nil
}

func checkLevel(n int, l float64) error {
	if err := quant.AtLeast("level", n, 1); err != nil {
		return err
	}
	return quant.Positive("length", l)
}

func checkPair(l float64, lv Levels) error {
	if err := quant.Positive("length", l); err != nil {
		return err
	}
	return lv.Validate()
}

func psi(n int, l, x float64) float64 {
	return math.Sqrt(2/l) * math.Sin(float64(n)*math.Pi*x/l)
}

// NewGrid returns an n×n grid spanning [0,l] on both axes.
func NewGrid(l float64, n int) (quant.Grid, error) {
	if err := quant.Positive("length", l); err != nil {
		return quant.Grid{}, err
	}
	if err := quant.AtLeast("resolution", n, 1); err != nil {
		return quant.Grid{}, err
	}
	xs := quant.Linspace(0, l, n)
	return quant.NewMeshGrid(xs, xs), nil
}

// ClassicalJointDensity is the uniform density 1/L² shaped like x1.
func ClassicalJointDensity(x1, x2 mat.Matrix, l float64) (*mat.Dense, error) {
	if err := quant.Positive("length", l); err != nil {
		return nil, err
	}
	return quant.Fill(x1, 1/(l*l)), nil
}

// products returns ψ_n(x1)ψ_k(x2) and ψ_k(x1)ψ_n(x2).
func products(x1, x2, l float64, lv Levels) (direct, exchanged float64) {
	direct = psi(lv.N, l, x1) * psi(lv.K, l, x2)
	exchanged = psi(lv.K, l, x1) * psi(lv.N, l, x2)
	return direct, exchanged
}

func symmetric(x1, x2, l float64, lv Levels) float64 {
	d, e := products(x1, x2, l, lv)
	return (d + e) / math.Sqrt2
}

func antisymmetric(x1, x2, l float64, lv Levels) float64 {
	d, e := products(x1, x2, l, lv)
	return (d - e) / math.Sqrt2
}

// SymmetricJointAmplitude returns Ψ_S(x1,x2) for the pair in lv.
func SymmetricJointAmplitude(x1, x2, l float64, lv Levels) (float64, error) {
	if err := checkPair(l, lv); err != nil {
		return 0, err
	}
	return symmetric(x1, x2, l, lv), nil
}

// AntisymmetricJointAmplitude returns Ψ_A(x1,x2) for the pair in lv.
func AntisymmetricJointAmplitude(x1, x2, l float64, lv Levels) (float64, error) {
	if err := checkPair(l, lv); err != nil {
		return 0, err
	}
	return antisymmetric(x1, x2, l, lv), nil
}

// SymmetricField evaluates Ψ_S over g.
func SymmetricField(g quant.Grid, l float64, lv Levels) (*mat.Dense, error) {
	if err := checkPair(l, lv); err != nil {
		return nil, err
	}
	return quant.Map2(g.X1, g.X2, func(x1, x2 float64) float64 {
		return symmetric(x1, x2, l, lv)
	}), nil
}

// AntisymmetricField evaluates Ψ_A over g.
func AntisymmetricField(g quant.Grid, l float64, lv Levels) (*mat.Dense, error) {
	if err := checkPair(l, lv); err != nil {
		return nil, err
	}
	return quant.Map2(g.X1, g.X2, func(x1, x2 float64) float64 {
		return antisymmetric(x1, x2, l, lv)
	}), nil
}

// ProbabilityDensity returns |amp|² elementwise.
func ProbabilityDensity(amp mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return v * v }, amp)
	return &out
}

// Fields are the three joint densities over one grid.
type Fields struct {
	Well      Well
	Grid      quant.Grid
	Classical *mat.Dense
	Bosons    *mat.Dense
	Fermions  *mat.Dense
}

// Solve validates w and evaluates all three densities.
func (w Well) Solve() (*Fields, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(w.Length, w.Resolution)
	if err != nil {
		return nil, err
	}
	classical, err := ClassicalJointDensity(g.X1, g.X2, w.Length)
	if err != nil {
		return nil, err
	}
	sym, err := SymmetricField(g, w.Length, w.Levels)
	if err != nil {
		return nil, err
	}
	anti, err := AntisymmetricField(g, w.Length, w.Levels)
	if err != nil {
		return nil, err
	}
	return &Fields{
		Well:      w,
		Grid:      g,
		Classical: classical,
		Bosons:    ProbabilityDensity(sym),
		Fermions:  ProbabilityDensity(anti),
	}, nil
}
