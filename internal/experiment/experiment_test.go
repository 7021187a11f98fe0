package experiment

import (
	"context"
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quantstat/internal/config"
	"github.com/san-kum/quantstat/internal/quant"
)

var _ = Describe("Experiment", func() {
	var (
		cfg *config.Config
		log *slog.Logger
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Fermi.Samples = 200
		cfg.Well.Resolution = 50
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	It("runs every study by default", func() {
		r, err := New(cfg, nil, log).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Fermi).NotTo(BeNil())
		Expect(r.Pair).NotTo(BeNil())

		Expect(r.Fermi.State.Samples).To(HaveLen(200))
		Expect(r.Fermi.State.FermiEnergy).To(BeNumerically(">", 0))
		Expect(r.Fermi.OccupiedStates).To(BeNumerically(">", 0))

		Expect(r.Pair.Classical.Integral).To(BeNumerically("~", 1, 1e-12))
		Expect(r.Pair.Bosons.Integral).To(BeNumerically("~", 1, 1e-2))
		Expect(r.Pair.Fermions.Integral).To(BeNumerically("~", 1, 1e-2))
		Expect(r.Pair.Fermions.Diagonal).To(BeZero())
	})

	It("runs only the requested study", func() {
		r, err := New(cfg, nil, log).Run(context.Background(), StudyPair)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Fermi).To(BeNil())
		Expect(r.Pair).NotTo(BeNil())
	})

	It("rejects an unknown study", func() {
		_, err := New(cfg, nil, log).Run(context.Background(), "ising")
		Expect(err).To(MatchError(ContainSubstring("unknown study")))
	})

	It("surfaces invalid parameters before computing", func() {
		cfg.Fermi.Volume = 0
		_, err := New(cfg, nil, log).Run(context.Background())
		Expect(errors.Is(err, quant.ErrInvalidParameter)).To(BeTrue())
	})

	It("stops when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(cfg, nil, log).Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("accepts registered studies", func() {
		reg := NewRegistry()
		called := false
		reg.Register("noop", func(*config.Config, *Report) error {
			called = true
			return nil
		})
		Expect(reg.List()).To(Equal([]string{StudyFermi, "noop", StudyPair}))

		_, err := New(cfg, reg, log).Run(context.Background(), "noop")
		Expect(err).NotTo(HaveOccurred())
		Expect(called).To(BeTrue())
	})
})
