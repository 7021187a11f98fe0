// Package analysis checks the sampled outputs of the models.
//
//   - [Integrate2D]: trapezoidal integral of a field over its grid
//   - [ExchangeResidual]: deviation from exchange (anti)symmetry
//   - [DiagonalMax]: weight at coincident positions
//   - [OccupiedStates]: area under g(E) up to the Fermi level
//
// # Normalization
//
// A joint density built from normalized single-particle states integrates
// to one, up to the grid's discretization error:
//
//	f, _ := twoparticle.DefaultWell().Solve()
//	total := analysis.Integrate2D(f.Grid, f.Bosons) // ≈ 1
package analysis
