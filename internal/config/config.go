package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/quantstat/internal/fermi"
	"github.com/san-kum/quantstat/internal/quant"
	"github.com/san-kum/quantstat/internal/twoparticle"
)

// EnvPrefix prefixes every environment override, e.g. QUANTSTAT_FERMI_MASS.
const EnvPrefix = "QUANTSTAT_"

const (
	DefaultOutputDir = "out"
	DefaultFormat    = "png"
	DefaultTheme     = "cyberpunk"
)

var formats = []string{"png", "svg", "pdf"}

type Config struct {
	Fermi  FermiConfig  `yaml:"fermi" envPrefix:"FERMI_"`
	Well   WellConfig   `yaml:"well" envPrefix:"WELL_"`
	Output OutputConfig `yaml:"output" envPrefix:"OUTPUT_"`
}

type FermiConfig struct {
	Hbar    float64 `yaml:"hbar" env:"HBAR"`
	Mass    float64 `yaml:"mass" env:"MASS"`
	Volume  float64 `yaml:"volume" env:"VOLUME"`
	Density float64 `yaml:"density" env:"DENSITY"`
	Samples int     `yaml:"samples" env:"SAMPLES"`
}

type WellConfig struct {
	Length     float64 `yaml:"length" env:"LENGTH"`
	Resolution int     `yaml:"resolution" env:"RESOLUTION"`
	LevelN     int     `yaml:"level_n" env:"LEVEL_N"`
	LevelK     int     `yaml:"level_k" env:"LEVEL_K"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir" env:"DIR"`
	Format string `yaml:"format" env:"FORMAT"`
	Theme  string `yaml:"theme" env:"THEME"`
	ASCII  bool   `yaml:"ascii" env:"ASCII"`
}

func DefaultConfig() *Config {
	lv := twoparticle.DefaultLevels()
	return &Config{
		Fermi: FermiConfig{
			Hbar:    fermi.DefaultHbar,
			Mass:    fermi.DefaultMass,
			Volume:  fermi.DefaultVolume,
			Density: fermi.DefaultDensity,
			Samples: fermi.DefaultSamples,
		},
		Well: WellConfig{
			Length:     twoparticle.DefaultLength,
			Resolution: twoparticle.DefaultResolution,
			LevelN:     lv.N,
			LevelK:     lv.K,
		},
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Format: DefaultFormat,
			Theme:  DefaultTheme,
		},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg. Keys absent from the file keep the
// values already in cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from QUANTSTAT_* variables that are set.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every domain constraint before any computation runs.
func (c *Config) Validate() error {
	if _, err := fermi.New(c.Constants()); err != nil {
		return fmt.Errorf("fermi: %w", err)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("fermi: %w", err)
	}
	if err := quant.AtLeast("samples", c.Fermi.Samples, 1); err != nil {
		return fmt.Errorf("fermi: %w", err)
	}
	if err := c.TwoParticleWell().Validate(); err != nil {
		return fmt.Errorf("well: %w", err)
	}
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("output: unknown format %q (available: %s)", c.Output.Format, strings.Join(formats, ", "))
	}
	return nil
}

func validFormat(f string) bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

func (c *Config) Constants() fermi.Constants {
	return fermi.Constants{Hbar: c.Fermi.Hbar, Mass: c.Fermi.Mass}
}

func (c *Config) Params() fermi.Params {
	return fermi.Params{Volume: c.Fermi.Volume, Density: c.Fermi.Density}
}

func (c *Config) TwoParticleWell() twoparticle.Well {
	return twoparticle.Well{
		Length:     c.Well.Length,
		Resolution: c.Well.Resolution,
		Levels:     twoparticle.Levels{N: c.Well.LevelN, K: c.Well.LevelK},
	}
}
