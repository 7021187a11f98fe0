package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/san-kum/quantstat/internal/config"
	"github.com/san-kum/quantstat/internal/experiment"
	"github.com/san-kum/quantstat/internal/render"
	"github.com/san-kum/quantstat/internal/viz"
)

// loadConfig layers defaults, preset, config file, environment and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("hbar") {
		cfg.Fermi.Hbar = hbar
	}
	if flags.Changed("mass") {
		cfg.Fermi.Mass = mass
	}
	if flags.Changed("volume") {
		cfg.Fermi.Volume = volume
	}
	if flags.Changed("density") {
		cfg.Fermi.Density = density
	}
	if flags.Changed("samples") {
		cfg.Fermi.Samples = samples
	}
	if flags.Changed("length") {
		cfg.Well.Length = length
	}
	if flags.Changed("resolution") {
		cfg.Well.Resolution = resolution
	}
	if flags.Changed("level-n") {
		cfg.Well.LevelN = levelN
	}
	if flags.Changed("level-k") {
		cfg.Well.LevelK = levelK
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("theme") {
		cfg.Output.Theme = theme
	}
	if flags.Changed("ascii") {
		cfg.Output.ASCII = ascii
	}
	return cfg, nil
}

// runStudies returns a RunE that runs the named studies, or all of them.
func runStudies(studies ...string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report, err := experiment.New(cfg, nil, slog.Default()).Run(cmd.Context(), studies...)
		if err != nil {
			return err
		}

		if report.Fermi != nil {
			fmt.Printf("Energia de Fermi: %.2e J\n", report.Fermi.State.FermiEnergy)
			fmt.Printf("Energia Total: %.2e J\n", report.Fermi.State.TotalEnergy)
		}
		fmt.Println(viz.Report(report, viz.NewStyles(viz.GetTheme(cfg.Output.Theme))))

		if cfg.Output.ASCII {
			printASCII(report)
		}

		if noPlots {
			return nil
		}
		paths, err := render.Write(cfg.Output.Dir, cfg.Output.Format, report)
		if err != nil {
			return err
		}
		for _, p := range paths {
			slog.Info("figure written", "path", p)
		}
		return nil
	}
}

func printASCII(r *experiment.Report) {
	if r.Fermi != nil {
		fmt.Println()
		fmt.Println(viz.DensityGraph(r.Fermi.State, 80, 12))
	}
	if r.Pair != nil {
		f := r.Pair.Fields
		fmt.Printf("\n%s\n%s\n", render.TitleClassical, viz.ShadeMap(f.Classical, 40, 20))
		fmt.Printf("\n%s\n%s\n", render.TitleBosons, viz.ShadeMap(f.Bosons, 40, 20))
		fmt.Printf("\n%s\n%s\n", render.TitleFermions, viz.ShadeMap(f.Fermions, 40, 20))
	}
}
