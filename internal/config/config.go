// Package config loads etru-helpers settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Output formats understood by the CLI.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Prime policies. PolicyStandard treats n < 2 as composite; PolicyLegacy
// reproduces the original helpers, where every n < 4 is prime.
const (
	PolicyStandard = "standard"
	PolicyLegacy   = "legacy"
)

// Config is the process configuration. Command-line flags override it.
type Config struct {
	LogLevel    string `env:"ETRU_LOG_LEVEL" envDefault:"info"`
	Output      string `env:"ETRU_OUTPUT" envDefault:"text"`
	Workers     int    `env:"ETRU_WORKERS" envDefault:"4"`
	MaxDigits   int    `env:"ETRU_MAX_DIGITS" envDefault:"0"`
	PrimePolicy string `env:"ETRU_PRIME_POLICY" envDefault:"standard"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("ETRU_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.MaxDigits < 0 {
		return fmt.Errorf("ETRU_MAX_DIGITS must not be negative, got %d", c.MaxDigits)
	}
	switch c.PrimePolicy {
	case PolicyStandard, PolicyLegacy:
	default:
		return fmt.Errorf("unknown prime policy %q (want %s or %s)", c.PrimePolicy, PolicyStandard, PolicyLegacy)
	}
	return nil
}

// Level returns the zap level named by LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("invalid ETRU_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// ValidateOutput reports whether format is one of the supported output formats.
func ValidateOutput(format string) error {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, OutputText, OutputJSON, OutputYAML)
}
