// Package twoparticle builds joint position densities for two particles in a
// one-dimensional infinite square well.
//
// Three pictures are compared on the same [0,L]×[0,L] grid:
//
//   - [ClassicalJointDensity]: distinguishable, uncorrelated particles (1/L²)
//   - [SymmetricField]: exchange-symmetric amplitude (bosons)
//   - [AntisymmetricField]: exchange-antisymmetric amplitude (fermions)
//
// Amplitudes are returned signed; [ProbabilityDensity] squares them. The pair
// occupies the single-particle levels given by [Levels], ground and first
// excited state by default. Every operation rejects a non-positive length or
// a level below one with quant.ErrInvalidParameter.
//
// # Exchange Properties
//
// The amplitudes are assembled so that swapping x1 and x2 reproduces the
// symmetric value bit-for-bit and negates the antisymmetric one exactly. The
// antisymmetric amplitude is therefore exactly zero on the diagonal x1 == x2.
package twoparticle
