// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/lfbench/internal/benchrun"
	"github.com/matt-FFFFFF/lfbench/internal/ctxlog"
)

// Defaults.
const (
	DefaultRepeats      = benchrun.DefaultRepeats
	DefaultBatchSize    = 100
	DefaultMinLength    = 4_000_000
	DefaultLengthSpread = 4_000_000
	DefaultRecordCount  = 300_000

	originalModeMarker = "original"
)

// ErrMarshalConfig is returned when the configuration cannot be rendered as YAML.
var ErrMarshalConfig = errors.New("failed to marshal configuration")

// Config is the full set of benchmark parameters.
type Config struct {
	// Mode is the free-form run mode. Any value containing "original" turns on Original.
	Mode string `yaml:"mode,omitempty" hcl:"mode,optional" json:"mode,omitempty"`
	// Repeats is the number of transform calls timed per input.
	Repeats int `yaml:"repeats" hcl:"repeats,optional" json:"repeats"`
	// BatchSize is the number of inputs generated per suite.
	BatchSize int `yaml:"batch_size" hcl:"batch_size,optional" json:"batch_size"`
	// MinLength is the shortest random string.
	MinLength int `yaml:"min_length" hcl:"min_length,optional" json:"min_length"`
	// LengthSpread widens random strings to MinLength + [0, LengthSpread).
	LengthSpread int `yaml:"length_spread" hcl:"length_spread,optional" json:"length_spread"`
	// RecordCount is the number of e-mail records per string in the record suite.
	RecordCount int `yaml:"record_count" hcl:"record_count,optional" json:"record_count"`
	// Seed fixes the random source. Zero seeds from system state.
	Seed uint64 `yaml:"seed" hcl:"seed,optional" json:"seed"`
}

// Default returns the configuration of the classic two suite run.
func Default() *Config {
	return &Config{
		Repeats:      DefaultRepeats,
		BatchSize:    DefaultBatchSize,
		MinLength:    DefaultMinLength,
		LengthSpread: DefaultLengthSpread,
		RecordCount:  DefaultRecordCount,
	}
}

// Load returns the defaults overlaid with the config file at src.
// An empty src returns the defaults.
func Load(ctx context.Context, src string) (*Config, error) {
	cfg := Default()

	if src == "" {
		return cfg, nil
	}

	data, err := Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	if err := Parse(src, data, cfg); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "configuration loaded", "source", src)

	return cfg, nil
}

// Original reports whether Mode asks for the original code path.
// The benchmark has a single implementation, so this only labels the run.
func (c *Config) Original() bool {
	return strings.Contains(strings.ToLower(c.Mode), originalModeMarker)
}

// Params returns the suite sizes.
func (c *Config) Params() benchrun.Params {
	return benchrun.Params{
		Inputs:       c.BatchSize,
		MinLength:    c.MinLength,
		LengthSpread: c.LengthSpread,
		Records:      c.RecordCount,
	}
}

// YAML renders the configuration.
func (c *Config) YAML() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Join(ErrMarshalConfig, err)
	}

	return b, nil
}

// LogValue implements slog.LogValuer.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", c.Mode),
		slog.Bool("original", c.Original()),
		slog.Int("repeats", c.Repeats),
		slog.Int("batch_size", c.BatchSize),
		slog.Int("min_length", c.MinLength),
		slog.Int("length_spread", c.LengthSpread),
		slog.Int("record_count", c.RecordCount),
		slog.Uint64("seed", c.Seed),
	)
}
