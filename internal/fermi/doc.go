// Package fermi models a three-dimensional free-electron (Fermi) gas at zero
// temperature.
//
// Given a particle density, a volume and a particle mass, [Model] computes:
//
//   - [Model.DensityOfStates]: g(E) = (V/2π²)·(2m/ħ²)^{3/2}·√E
//   - [Model.FermiEnergy]: E_F = (ħ²/2m)·(3π²·n/V)^{2/3}
//   - [Model.TotalEnergy]: U = (3/5)·E_F·V·g(E_F)
//   - [Model.Sweep]: the g(E) curve sampled over [0, 2·E_F]
//
// Constants are passed to [New] explicitly; the package holds no mutable
// state.
//
//	m, _ := fermi.New(fermi.DefaultConstants())
//	st, err := m.Solve(fermi.DefaultParams(), 1000)
//	fmt.Printf("Energia de Fermi: %.2e J\n", st.FermiEnergy)
package fermi
