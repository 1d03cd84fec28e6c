// Package config loads the run configuration for the navreport tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run parameters. Target presets themselves are fixed
// in code; only the set of recognized difficulty tags is extensible.
type Config struct {
	// LogDir is the root of the log-dir/algorithm/difficulty/*.log tree.
	LogDir string `yaml:"log_dir"`

	// OutDir receives plots, the comparison page and the JSON summary.
	// It is reset at the start of every run.
	OutDir string `yaml:"out_dir"`

	// Workers caps the assembly pool; zero means one worker per CPU.
	Workers int `yaml:"workers"`

	// SkipBad skips logs that fail to parse instead of aborting the run.
	SkipBad bool `yaml:"skip_bad"`

	// Difficulties lists extra recognized non-realistic difficulty tags
	// (all mapped to the fallback goal preset).
	Difficulties []string `yaml:"difficulties"`

	// SummaryJSON is the summary file name inside OutDir; empty disables
	// the JSON export.
	SummaryJSON string `yaml:"summary_json"`
}

// Default returns the built-in run configuration.
func Default() Config {
	return Config{
		LogDir:      "logs",
		OutDir:      "plots",
		SummaryJSON: "summary.json",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
