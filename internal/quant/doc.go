// Package quant provides the numeric primitives shared by the quantum
// statistics models.
//
// The package defines the array types the models evaluate over and the
// domain errors they report:
//
//   - [Vector]: ordered 1-D samples (energies, positions)
//   - [Grid]: co-indexed 2-D coordinate arrays (a mesh grid)
//   - [Map], [MapErr], [Map2]: elementwise evaluation of a scalar formula
//   - [ErrInvalidParameter], [ErrUndefinedEvaluation]: domain violations
//
// # Scalar and vector evaluation
//
// Every formula is written once as a scalar function and lifted to arrays
// with the mapping helpers, so a value computed on a curve is bit-identical
// to the same value computed alone:
//
//	g := func(e float64) float64 { return c * math.Sqrt(e) }
//	curve := quant.Map(quant.Linspace(0, 1, 100), g)
//
// # Thread Safety
//
// All functions are pure. Returned arrays are freshly allocated and never
// alias their inputs.
package quant
