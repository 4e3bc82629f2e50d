// Package config loads the fastrsqrt command configuration from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/fastrsqrt"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the root configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Accuracy  AccuracyConfig  `yaml:"accuracy"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

// NormalizeConfig configures batch normalization.
type NormalizeConfig struct {
	Iterations  int     `yaml:"iterations"`
	Concurrency int     `yaml:"concurrency"`
	ChunkSize   int     `yaml:"chunk_size"`
	RateLimit   float64 `yaml:"rate_limit"`
	SkipInvalid bool    `yaml:"skip_invalid"`
}

// AccuracyConfig configures the accuracy sweep.
type AccuracyConfig struct {
	Min        float32 `yaml:"min"`
	Max        float32 `yaml:"max"`
	Samples    int     `yaml:"samples"`
	Iterations int     `yaml:"iterations"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Normalize.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("normalize.rate_limit must not be negative, got %v", c.Normalize.RateLimit))
	}
	if c.Accuracy.Samples <= 0 {
		errs = append(errs, fmt.Errorf("accuracy.samples must be positive, got %d", c.Accuracy.Samples))
	}
	if _, ok := fastrsqrt.NewPositiveFloat(c.Accuracy.Min); !ok {
		errs = append(errs, fmt.Errorf("accuracy.min must be a positive normal float, got %v", c.Accuracy.Min))
	}
	if _, ok := fastrsqrt.NewPositiveFloat(c.Accuracy.Max); !ok {
		errs = append(errs, fmt.Errorf("accuracy.max must be a positive normal float, got %v", c.Accuracy.Max))
	}
	if c.Accuracy.Max < c.Accuracy.Min {
		errs = append(errs, fmt.Errorf("accuracy.max (%v) must not be below accuracy.min (%v)", c.Accuracy.Max, c.Accuracy.Min))
	}

	return errors.Join(errs...)
}

// WriteYAML saves the configuration as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Logger builds the configured logger.
func (l LogConfig) Logger() (*fastrsqrt.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	if l.Format == "json" {
		return fastrsqrt.NewJSONLogger(level), nil
	}
	return fastrsqrt.NewTextLogger(level), nil
}

// Options translates the section into Normalizer options.
func (n NormalizeConfig) Options() []fastrsqrt.Option {
	return []fastrsqrt.Option{
		fastrsqrt.WithIterations(n.Iterations),
		fastrsqrt.WithConcurrency(n.Concurrency),
		fastrsqrt.WithChunkSize(n.ChunkSize),
		fastrsqrt.WithRateLimit(n.RateLimit),
		fastrsqrt.WithSkipInvalid(n.SkipInvalid),
	}
}
