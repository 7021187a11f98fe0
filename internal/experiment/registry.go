package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/quantstat/internal/analysis"
	"github.com/san-kum/quantstat/internal/config"
	"github.com/san-kum/quantstat/internal/fermi"
)

const (
	StudyFermi = "fermi"
	StudyPair  = "pair"
)

// StudyFunc computes one study from cfg and stores it in r.
type StudyFunc func(cfg *config.Config, r *Report) error

type Registry struct {
	studies map[string]StudyFunc
}

func NewRegistry() *Registry {
	r := &Registry{studies: make(map[string]StudyFunc)}
	r.studies[StudyFermi] = runFermi
	r.studies[StudyPair] = runPair
	return r
}

func (r *Registry) Register(name string, fn StudyFunc) {
	r.studies[name] = fn
}

func (r *Registry) Get(name string) (StudyFunc, error) {
	fn, ok := r.studies[name]
	if !ok {
		return nil, fmt.Errorf("unknown study: %s (available: %v)", name, r.List())
	}
	return fn, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.studies))
	for name := range r.studies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runFermi(cfg *config.Config, r *Report) error {
	m, err := fermi.New(cfg.Constants())
	if err != nil {
		return err
	}
	st, err := m.Solve(cfg.Params(), cfg.Fermi.Samples)
	if err != nil {
		return err
	}
	r.Fermi = &FermiResult{
		State:          st,
		OccupiedStates: analysis.OccupiedStates(st.Samples, st.FermiEnergy),
	}
	return nil
}

func runPair(cfg *config.Config, r *Report) error {
	f, err := cfg.TwoParticleWell().Solve()
	if err != nil {
		return err
	}
	r.Pair = &PairResult{
		Fields:    f,
		Classical: analysis.Stats(f.Grid, f.Classical),
		Bosons:    analysis.Stats(f.Grid, f.Bosons),
		Fermions:  analysis.Stats(f.Grid, f.Fermions),
	}
	return nil
}
