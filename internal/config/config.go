// Package config loads the optional tool configuration file.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the YAML-overridable tool configuration. The threshold
// defaults mirror the controller firmware's sensor-driver constants; they
// were promoted to configuration because their provenance is a specific
// driver's error-code convention, not a general rule.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Scale     int    `yaml:"scale"`
	FontPath  string `yaml:"font_path"`

	FaultBand struct {
		Low  float64 `yaml:"low"`
		High float64 `yaml:"high"`
	} `yaml:"fault_band"`

	HistoryBounds struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"history_bounds"`

	SafetyScore int `yaml:"safety_score"`
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		OutputDir:   "docs/images",
		Scale:       2,
		SafetyScore: 50,
	}
	cfg.FaultBand.Low = 84.5
	cfg.FaultBand.High = 85.5
	cfg.HistoryBounds.Min = 0
	cfg.HistoryBounds.Max = 100
	return cfg
}

// Load overlays the file at path on the defaults. An empty path returns
// the defaults unchanged; a path that cannot be read or parsed is an
// error, since the caller asked for it explicitly.
func Load(fs afero.Fs, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg, nil
}
