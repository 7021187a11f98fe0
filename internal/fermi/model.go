package fermi

import (
	"math"

	"github.com/san-kum/quantstat/internal/quant"
)

const (
	// DefaultHbar is the reduced Planck constant in J·s.
	DefaultHbar = 1.0545718e-34
	// DefaultMass is the electron mass in kg.
	DefaultMass = 9.1093837e-31
	// DefaultVolume is in m³.
	DefaultVolume = 1e-6
	// DefaultDensity is in m⁻³.
	DefaultDensity = 1e28
	// DefaultSamples is the resolution of the plotted g(E) curve.
	DefaultSamples = 1000
)

// Constants are the physical constants of a gas.
type Constants struct {
	Hbar float64
	Mass float64
}

func DefaultConstants() Constants {
	return Constants{Hbar: DefaultHbar, Mass: DefaultMass}
}

func (c Constants) Validate() error {
	if err := quant.Positive("hbar", c.Hbar); err != nil {
		return err
	}
	return quant.Positive("mass", c.Mass)
}

// Params describe one gas instance.
type Params struct {
	Volume  float64
	Density float64
}

func DefaultParams() Params {
	return Params{Volume: DefaultVolume, Density: DefaultDensity}
}

func (p Params) Validate() error {
	if err := quant.Positive("volume", p.Volume); err != nil {
		return err
	}
	return quant.Positive("density", p.Density)
}

// EnergySample is one point of the density-of-states curve.
type EnergySample struct {
	E float64
	G float64
}

// Model evaluates the closed-form Fermi gas quantities for fixed constants.
type Model struct {
	c Constants
}

// New returns a Model bound to c.
func New(c Constants) (*Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Model{c: c}, nil
}

func (m *Model) Constants() Constants { return m.c }

// DensityOfStates returns g(E) for a gas of volume v. Negative energies are
// rejected with quant.ErrUndefinedEvaluation.
func (m *Model) DensityOfStates(e, v float64) (float64, error) {
	if err := quant.Positive("volume", v); err != nil {
		return 0, err
	}
	if !(e >= 0) {
		return 0, &quant.ParamError{Name: "energy", Value: e, Wrapped: quant.ErrUndefinedEvaluation}
	}
	k := 2 * m.c.Mass / (m.c.Hbar * m.c.Hbar)
	return (v / (2 * math.Pi * math.Pi)) * math.Pow(k, 1.5) * math.Sqrt(e), nil
}

// DensityOfStatesCurve evaluates DensityOfStates at every energy in es.
func (m *Model) DensityOfStatesCurve(es quant.Vector, v float64) (quant.Vector, error) {
	return quant.MapErr(es, func(e float64) (float64, error) {
		return m.DensityOfStates(e, v)
	})
}

// FermiEnergy returns E_F for the given parameters.
func (m *Model) FermiEnergy(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	hb := m.c.Hbar
	return (hb * hb / (2 * m.c.Mass)) * math.Pow(3*math.Pi*math.Pi*p.Density/p.Volume, 2.0/3.0), nil
}

// TotalEnergy returns U = (3/5)·E_F·V·g(E_F).
func (m *Model) TotalEnergy(ef, v float64) (float64, error) {
	g, err := m.DensityOfStates(ef, v)
	if err != nil {
		return 0, err
	}
	return (3.0 / 5.0) * ef * v * g, nil
}

// Sweep samples the density of states uniformly over [0, 2·ef].
func (m *Model) Sweep(ef, v float64, samples int) ([]EnergySample, error) {
	if err := quant.Positive("fermi_energy", ef); err != nil {
		return nil, err
	}
	if err := quant.AtLeast("samples", samples, 1); err != nil {
		return nil, err
	}
	es := quant.Linspace(0, 2*ef, samples)
	gs, err := m.DensityOfStatesCurve(es, v)
	if err != nil {
		return nil, err
	}
	out := make([]EnergySample, len(es))
	for i := range es {
		out[i] = EnergySample{E: es[i], G: gs[i]}
	}
	return out, nil
}

// State is the full solution for one parameter set.
type State struct {
	Params      Params
	FermiEnergy float64
	TotalEnergy float64
	Samples     []EnergySample
}

// Solve computes E_F, U and the g(E) sweep in one pass.
func (m *Model) Solve(p Params, samples int) (*State, error) {
	ef, err := m.FermiEnergy(p)
	if err != nil {
		return nil, err
	}
	u, err := m.TotalEnergy(ef, p.Volume)
	if err != nil {
		return nil, err
	}
	sw, err := m.Sweep(ef, p.Volume, samples)
	if err != nil {
		return nil, err
	}
	return &State{Params: p, FermiEnergy: ef, TotalEnergy: u, Samples: sw}, nil
}

// Energies returns the E column of samples.
func Energies(samples []EnergySample) quant.Vector {
	out := make(quant.Vector, len(samples))
	for i, s := range samples {
		out[i] = s.E
	}
	return out
}

// Densities returns the g(E) column of samples.
func Densities(samples []EnergySample) quant.Vector {
	out := make(quant.Vector, len(samples))
	for i, s := range samples {
		out[i] = s.G
	}
	return out
}
