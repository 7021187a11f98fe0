package quant

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is an ordered sequence of samples.
type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// Max returns the largest element, or 0 for an empty vector.
func (v Vector) Max() float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Max(v)
}

// Linspace returns n evenly spaced samples over [start, end] inclusive.
// A single sample is start; n < 1 yields nil.
func Linspace(start, end float64, n int) Vector {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return Vector{start}
	}
	out := make(Vector, n)
	floats.Span(out, start, end)
	out[n-1] = end
	return out
}

// Map evaluates f at every element of xs.
func Map(xs Vector, f func(float64) float64) Vector {
	out := make(Vector, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// MapErr evaluates f at every element of xs and stops at the first error.
func MapErr(xs Vector, f func(float64) (float64, error)) (Vector, error) {
	out := make(Vector, len(xs))
	for i, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = y
	}
	return out, nil
}

// Grid holds co-indexed coordinate arrays. X1 varies along columns and X2
// along rows, so X1.At(i, j) == xs[j] and X2.At(i, j) == ys[i].
type Grid struct {
	X1, X2 *mat.Dense
}

// NewMeshGrid builds a len(ys)×len(xs) grid. Both vectors must be non-empty.
func NewMeshGrid(xs, ys Vector) Grid {
	r, c := len(ys), len(xs)
	x1 := mat.NewDense(r, c, nil)
	x2 := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			x1.Set(i, j, xs[j])
			x2.Set(i, j, ys[i])
		}
	}
	return Grid{X1: x1, X2: x2}
}

// Dims returns the grid shape as rows, columns.
func (g Grid) Dims() (r, c int) {
	return g.X1.Dims()
}

// Swapped returns the grid with the two coordinates exchanged.
func (g Grid) Swapped() Grid {
	return Grid{X1: g.X2, X2: g.X1}
}

// Map2 evaluates f at every co-indexed pair of a and b. The matrices must
// share a shape.
func Map2(a, b mat.Matrix, f func(x1, x2 float64) float64) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 {
		return f(v, b.At(i, j))
	}, a)
	return &out
}

// Fill returns a matrix shaped like a with every element set to v.
func Fill(a mat.Matrix, v float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, _ float64) float64 { return v }, a)
	return &out
}
