// Package config loads CLI settings from flags and COORDFIT_* environment
// variables.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/coordfit/linear"
	"github.com/YuminosukeSato/coordfit/pkg/errors"
	"github.com/YuminosukeSato/coordfit/pkg/log"
	"github.com/YuminosukeSato/coordfit/tuning"
)

// EnvPrefix is prepended to every environment key, e.g. COORDFIT_ITERATIONS.
const EnvPrefix = "COORDFIT"

// Keys shared by flags, environment and Config.
const (
	KeyIterations = "iterations"
	KeySeed       = "seed"
	KeyRadius     = "radius"
	KeyStep       = "step"
	KeyPlot       = "plot"
	KeyLogLevel   = "log-level"
	KeyLogFormat  = "log-format"
)

// Config holds the settings of a tuning run.
type Config struct {
	Iterations int
	Seed       uint64
	Radius     float64
	Step       float64
	Plot       string
	LogLevel   log.Level
	LogFormat  string
}

// RegisterFlags adds the tuning flags with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int(KeyIterations, linear.DefaultIterations, "number of hill-climbing generations")
	fs.Uint64(KeySeed, 1, "seed of the perturbation source")
	fs.Float64(KeyRadius, tuning.DefaultRadius, "perturbation half-width")
	fs.Float64(KeyStep, tuning.DefaultStep, "perturbation quantization step")
	fs.String(KeyPlot, "", "write a convergence chart to this file (.png, .svg, .pdf)")
	fs.String(KeyLogLevel, "info", "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, "console", "log format: console or json")
}

// Load resolves flags and environment into a Config. Explicit flags win
// over environment variables, which win over flag defaults.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "config: bind flags")
	}

	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Iterations: v.GetInt(KeyIterations),
		Seed:       v.GetUint64(KeySeed),
		Radius:     v.GetFloat64(KeyRadius),
		Step:       v.GetFloat64(KeyStep),
		Plot:       v.GetString(KeyPlot),
		LogLevel:   level,
		LogFormat:  strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values a Tuner would reject, so the CLI can fail
// before doing any work.
func (c *Config) Validate() error {
	if c.Iterations < 0 {
		return errors.NewValidationError(KeyIterations, "must not be negative", c.Iterations)
	}
	if !(c.Radius > 0) {
		return errors.NewValidationError(KeyRadius, "must be positive", c.Radius)
	}
	if !(c.Step > 0) || c.Step > c.Radius {
		return errors.NewValidationError(KeyStep, "must be positive and not larger than radius", c.Step)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return errors.NewValidationError(KeyLogFormat, "must be console or json", c.LogFormat)
	}
	return nil
}
