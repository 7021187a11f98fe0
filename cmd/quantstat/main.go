package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/quantstat/internal/config"
	"github.com/san-kum/quantstat/internal/experiment"
)

var (
	configFile string
	preset     string
	outDir     string
	format     string
	theme      string
	ascii      bool
	noPlots    bool
	verbose    bool
	// Fermi gas
	hbar    float64
	mass    float64
	volume  float64
	density float64
	samples int
	// Square well
	length     float64
	resolution int
	levelN     int
	levelK     int
)

// main registers the commands and flags and executes the root command, which
// runs every study. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "quantstat",
		Short:        "closed-form quantum statistics with plots",
		SilenceUsage: true,
		RunE:         runStudies(),
	}
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging()
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&outDir, "out", config.DefaultOutputDir, "output directory for figures")
	pf.StringVar(&format, "format", config.DefaultFormat, "figure format (png, svg, pdf)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")
	pf.BoolVar(&ascii, "ascii", false, "draw plots in the terminal")
	pf.BoolVar(&noPlots, "no-plots", false, "skip writing figures")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	addFermiFlags(rootCmd)
	addWellFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run every study",
		Args:  cobra.NoArgs,
		RunE:  runStudies(),
	}
	addFermiFlags(runCmd)
	addWellFlags(runCmd)

	fermiCmd := &cobra.Command{
		Use:   "fermi",
		Short: "free-electron gas: Fermi energy, total energy, density of states",
		Args:  cobra.NoArgs,
		RunE:  runStudies(experiment.StudyFermi),
	}
	addFermiFlags(fermiCmd)

	pairCmd := &cobra.Command{
		Use:   "pair",
		Short: "two particles in an infinite well: classical, bosons, fermions",
		Args:  cobra.NoArgs,
		RunE:  runStudies(experiment.StudyPair),
	}
	addWellFlags(pairCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "quantstat.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, fermiCmd, pairCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func addFermiFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&hbar, "hbar", 0, "reduced Planck constant (J·s)")
	cmd.Flags().Float64Var(&mass, "mass", 0, "particle mass (kg)")
	cmd.Flags().Float64Var(&volume, "volume", 0, "volume (m³)")
	cmd.Flags().Float64Var(&density, "density", 0, "particle density (m⁻³)")
	cmd.Flags().IntVar(&samples, "samples", 0, "points on the density of states curve")
}

func addWellFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&length, "length", 0, "well length")
	cmd.Flags().IntVar(&resolution, "resolution", 0, "grid points per axis")
	cmd.Flags().IntVar(&levelN, "level-n", 0, "first occupied level")
	cmd.Flags().IntVar(&levelK, "level-k", 0, "second occupied level")
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
