package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfig marks an invalid run configuration.
var ErrConfig = errors.New("hopping: invalid configuration")

// Output formats.
const (
	FormatDebug = "debug"
	FormatTerms = "terms"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var knownFormats = []string{FormatDebug, FormatTerms, FormatJSON, FormatYAML}

// Config is the run configuration, read from YAML and overridden by flags.
type Config struct {
	Order             int      `yaml:"order"`
	OutputDir         string   `yaml:"output_dir"`
	Formats           []string `yaml:"formats"`
	Workers           int      `yaml:"workers"`
	LogLevel          string   `yaml:"log_level"`          // debug, info, warn, error
	SymbolicPositions bool     `yaml:"symbolic_positions"` // "x + i" instead of "{1}" in debug output
}

// DefaultConfig writes debug, terms and json files into ./Configurations.
func DefaultConfig() Config {
	return Config{
		OutputDir:         "Configurations",
		Formats:           []string{FormatDebug, FormatTerms, FormatJSON},
		Workers:           1,
		LogLevel:          "info",
		SymbolicPositions: true,
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the order, formats, worker count and log level.
func (c Config) Validate() error {
	if c.Order < 2 || c.Order%2 != 0 {
		return fmt.Errorf("%w: order %d must be even and at least 2", ErrConfig, c.Order)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrConfig)
	}
	for _, f := range c.Formats {
		if !slices.Contains(knownFormats, f) {
			return fmt.Errorf("%w: unknown format %q (want one of %s)", ErrConfig, f, strings.Join(knownFormats, ", "))
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be at least 1", ErrConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrConfig, c.LogLevel)
	}

	return l, nil
}

// Wants reports whether format f is requested.
func (c Config) Wants(f string) bool {
	return slices.Contains(c.Formats, f)
}

func splitFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, strings.ToLower(f))
		}
	}

	return out
}
