// Package config loads the sumseq CLI configuration from YAML, with defaults
// and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sumseq/subsetsum"
	"github.com/katalvlaran/sumseq/tsp"
)

// Config holds all sumseq configuration.
type Config struct {
	Sums    SumsConfig    `yaml:"sums"`
	TSP     TSPConfig     `yaml:"tsp"`
	Logging LoggingConfig `yaml:"logging"`
}

// SumsConfig configures the sums command.
type SumsConfig struct {
	Separator string `yaml:"separator"`
	Limit     int    `yaml:"limit"`     // 0 = unbounded
	TieBreak  string `yaml:"tie_break"` // signature, insertion
	SeenSet   bool   `yaml:"seen_set"`

	// MaxUnboundedN refuses a full drain of more than 2^MaxUnboundedN sums
	// when neither a limit nor a max is given.
	MaxUnboundedN int `yaml:"max_unbounded_n"`
}

// TSPConfig configures the tsp command.
type TSPConfig struct {
	Algorithm      string `yaml:"algorithm"` // brute, nearest
	Output         string `yaml:"output"`    // path, length
	MaxBruteForceN int    `yaml:"max_brute_force_n"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Sums: SumsConfig{
			Separator:     ", ",
			TieBreak:      "signature",
			SeenSet:       true,
			MaxUnboundedN: 20,
		},
		TSP: TSPConfig{
			Algorithm:      "brute",
			Output:         "path",
			MaxBruteForceN: tsp.MaxBruteForceN,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("SUMSEQ_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if sep := os.Getenv("SUMSEQ_SEPARATOR"); sep != "" {
		c.Sums.Separator = sep
	}
	if algo := os.Getenv("SUMSEQ_TSP_ALGO"); algo != "" {
		c.TSP.Algorithm = algo
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Sums.Limit < 0 {
		return fmt.Errorf("sums.limit must be non-negative, got %d", c.Sums.Limit)
	}
	if c.Sums.MaxUnboundedN < 0 {
		return fmt.Errorf("sums.max_unbounded_n must be non-negative, got %d", c.Sums.MaxUnboundedN)
	}
	if _, ok := subsetsum.ParseTieBreak(c.Sums.TieBreak); !ok {
		return fmt.Errorf("invalid sums.tie_break: %q (valid: signature, insertion)", c.Sums.TieBreak)
	}
	if _, err := tsp.ParseAlgorithm(c.TSP.Algorithm); err != nil {
		return fmt.Errorf("invalid tsp.algorithm %q: %w", c.TSP.Algorithm, err)
	}
	if _, err := tsp.ParseOutput(c.TSP.Output); err != nil {
		return fmt.Errorf("invalid tsp.output %q: %w", c.TSP.Output, err)
	}
	if c.TSP.MaxBruteForceN < 1 {
		return fmt.Errorf("tsp.max_brute_force_n must be positive, got %d", c.TSP.MaxBruteForceN)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format: %q (valid: json, console)", c.Logging.Format)
	}

	return nil
}
