package analysis

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quantstat/internal/fermi"
	"github.com/san-kum/quantstat/internal/quant"
)

// Axes returns the sample coordinates along x1 (columns) and x2 (rows).
func Axes(g quant.Grid) (xs, ys quant.Vector) {
	xs = mat.Row(nil, 0, g.X1)
	ys = mat.Col(nil, 0, g.X2)
	return xs, ys
}

// Integrate2D applies the trapezoidal rule to f over g, first along x1 then
// along x2. A grid with a single sample along either axis spans no area and
// integrates to zero.
func Integrate2D(g quant.Grid, f mat.Matrix) float64 {
	xs, ys := Axes(g)
	if len(xs) < 2 || len(ys) < 2 {
		return 0
	}
	inner := make([]float64, len(ys))
	for i := range ys {
		inner[i] = integrate.Trapezoidal(xs, mat.Row(nil, i, f))
	}
	return integrate.Trapezoidal(ys, inner)
}

// ExchangeResidual returns max |f(i,j) − sign·f(j,i)| over a square field.
// Zero with sign=+1 means exact exchange symmetry, with sign=−1 exact
// antisymmetry.
func ExchangeResidual(f mat.Matrix, sign float64) float64 {
	r, c := f.Dims()
	if r != c {
		panic(mat.ErrSquare)
	}
	worst := 0.0
	for i := 0; i < r; i++ {
		for j := i; j < c; j++ {
			worst = math.Max(worst, math.Abs(f.At(i, j)-sign*f.At(j, i)))
		}
	}
	return worst
}

// DiagonalMax returns the largest |f(i,i)|, the coincident-position weight.
func DiagonalMax(f mat.Matrix) float64 {
	r, c := f.Dims()
	n := min(r, c)
	worst := 0.0
	for i := 0; i < n; i++ {
		worst = math.Max(worst, math.Abs(f.At(i, i)))
	}
	return worst
}

// FieldStats summarises one density field.
type FieldStats struct {
	Min, Max float64
	Integral float64
	Diagonal float64
}

func Stats(g quant.Grid, f mat.Matrix) FieldStats {
	return FieldStats{
		Min:      mat.Min(f),
		Max:      mat.Max(f),
		Integral: Integrate2D(g, f),
		Diagonal: DiagonalMax(f),
	}
}

// OccupiedStates integrates g(E) over the sampled energies up to ef. The
// analytic value is (2/3)·ef·g(ef).
func OccupiedStates(samples []fermi.EnergySample, ef float64) float64 {
	var es, gs []float64
	for _, s := range samples {
		if s.E > ef {
			break
		}
		es = append(es, s.E)
		gs = append(gs, s.G)
	}
	if len(es) < 2 {
		return 0
	}
	return integrate.Trapezoidal(es, gs)
}
