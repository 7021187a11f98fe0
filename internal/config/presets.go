package config

import "sort"

// Presets are named configurations, each starting from DefaultConfig.
var Presets = map[string]func(c *Config){
	"electron": func(c *Config) {},
	"sodium": func(c *Config) {
		c.Fermi.Density = 2.65e28
	},
	"copper": func(c *Config) {
		c.Fermi.Density = 8.47e28
	},
	"dilute": func(c *Config) {
		c.Fermi.Density = 1e22
	},
	"excited": func(c *Config) {
		c.Well.LevelN, c.Well.LevelK = 2, 3
	},
	"fine": func(c *Config) {
		c.Fermi.Samples = 4000
		c.Well.Resolution = 300
	},
	"wide": func(c *Config) {
		c.Well.Length = 2
	},
}

// GetPreset returns a fresh config for name, or nil if it does not exist.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
