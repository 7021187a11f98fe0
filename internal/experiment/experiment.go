package experiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/quantstat/internal/analysis"
	"github.com/san-kum/quantstat/internal/config"
	"github.com/san-kum/quantstat/internal/fermi"
	"github.com/san-kum/quantstat/internal/twoparticle"
)

type FermiResult struct {
	State          *fermi.State
	OccupiedStates float64
}

type PairResult struct {
	Fields    *twoparticle.Fields
	Classical analysis.FieldStats
	Bosons    analysis.FieldStats
	Fermions  analysis.FieldStats
}

// Report collects the outputs of the studies that ran. Studies that were not
// requested leave their field nil.
type Report struct {
	Fermi *FermiResult
	Pair  *PairResult
}

type Experiment struct {
	cfg      *config.Config
	registry *Registry
	log      *slog.Logger
}

func New(cfg *config.Config, registry *Registry, log *slog.Logger) *Experiment {
	if registry == nil {
		registry = NewRegistry()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Experiment{cfg: cfg, registry: registry, log: log}
}

// Run validates the configuration and runs the named studies in order. An
// empty list runs every registered study.
func (e *Experiment) Run(ctx context.Context, studies ...string) (*Report, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if len(studies) == 0 {
		studies = e.registry.List()
	}

	report := &Report{}
	for _, name := range studies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fn, err := e.registry.Get(name)
		if err != nil {
			return nil, err
		}

		start := time.Now()
		if err := fn(e.cfg, report); err != nil {
			return nil, fmt.Errorf("study %s: %w", name, err)
		}
		e.log.Debug("study complete", "study", name, "elapsed", time.Since(start))
	}
	return report, nil
}
