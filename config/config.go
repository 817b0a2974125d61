// SPDX-License-Identifier: MIT

// Package config loads training and logging settings for the hmm package
// from a file (YAML, JSON or TOML) and LVHMM_* environment variables.
//
// Keys (with defaults):
//
//	train.tolerance          1e-6
//	train.max_iterations     1000
//	train.reestimate_initial false
//	train.epsilon            1e-9
//	log.level                info     (debug|info|warn|error)
//	log.format               console  (console|json)
//	log.show_caller          false
//
// Environment variables override the file: train.max_iterations is read
// from LVHMM_TRAIN_MAX_ITERATIONS. Command-line flags registered with
// RegisterFlags override both when they are set explicitly.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvhmm/hmm"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "LVHMM"

// Defaults (single source of truth).
const (
	DefaultTolerance  = 1e-6
	DefaultLogLevel   = "info"
	DefaultLogFormat  = FormatConsole
	FormatConsole     = "console"
	FormatJSON        = "json"
	defaultTimeLayout = "2006-01-02 15:04:05.000"
)

// ErrInvalidConfig reports a setting outside its documented range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the root document.
type Config struct {
	Train TrainConfig `mapstructure:"train"`
	Log   LogConfig   `mapstructure:"log"`
}

// TrainConfig mirrors the knobs of hmm.Train.
type TrainConfig struct {
	Tolerance         float64 `mapstructure:"tolerance"`
	MaxIterations     int     `mapstructure:"max_iterations"`
	ReestimateInitial bool    `mapstructure:"reestimate_initial"`
	Epsilon           float64 `mapstructure:"epsilon"`
}

// LogConfig selects the zap logger built by Build.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	ShowCaller bool   `mapstructure:"show_caller"`
}

// Flag names understood by RegisterFlags and LoadWithFlags, keyed to their
// configuration key.
var flagKeys = map[string]string{
	"tolerance":          "train.tolerance",
	"max-iterations":     "train.max_iterations",
	"reestimate-initial": "train.reestimate_initial",
	"epsilon":            "train.epsilon",
	"log-level":          "log.level",
	"log-format":         "log.format",
}

// RegisterFlags defines the override flags on fs. Flag defaults mirror the
// configuration defaults; only explicitly set flags take precedence.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64("tolerance", DefaultTolerance, "Baum-Welch convergence threshold")
	fs.Int("max-iterations", hmm.DefaultMaxIterations, "Baum-Welch iteration cap")
	fs.Bool("reestimate-initial", hmm.DefaultReestimateInitial, "re-estimate the initial distribution")
	fs.Float64("epsilon", hmm.DefaultEpsilon, "stochasticity tolerance")
	fs.String("log-level", DefaultLogLevel, "log level (debug|info|warn|error)")
	fs.String("log-format", DefaultLogFormat, "log format (console|json)")
}

// Load reads path (if non-empty), applies LVHMM_* overrides and validates
// the result. An empty path yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	return LoadWithFlags(path, nil)
}

// LoadWithFlags is Load with an additional flag layer on top. fs may be nil;
// flags it does not define are ignored.
func LoadWithFlags(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("train.tolerance", DefaultTolerance)
	v.SetDefault("train.max_iterations", hmm.DefaultMaxIterations)
	v.SetDefault("train.reestimate_initial", hmm.DefaultReestimateInitial)
	v.SetDefault("train.epsilon", hmm.DefaultEpsilon)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.show_caller", false)
}

// Validate checks every setting against its documented range.
func (c *Config) Validate() error {
	t := c.Train
	switch {
	case math.IsNaN(t.Tolerance) || math.IsInf(t.Tolerance, 0) || t.Tolerance < 0:
		return fmt.Errorf("%w: train.tolerance=%g", ErrInvalidConfig, t.Tolerance)
	case t.MaxIterations < 1:
		return fmt.Errorf("%w: train.max_iterations=%d", ErrInvalidConfig, t.MaxIterations)
	case math.IsNaN(t.Epsilon) || math.IsInf(t.Epsilon, 0) || t.Epsilon < 0:
		return fmt.Errorf("%w: train.epsilon=%g", ErrInvalidConfig, t.Epsilon)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level=%q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Options maps the training section onto hmm options, routing progress to
// logger (nil keeps the no-op default). The tolerance is passed to Train
// separately.
func (t TrainConfig) Options(logger *zap.Logger) []hmm.Option {
	return []hmm.Option{
		hmm.WithMaxIterations(t.MaxIterations),
		hmm.WithReestimateInitial(t.ReestimateInitial),
		hmm.WithEpsilon(t.Epsilon),
		hmm.WithLogger(logger),
	}
}

// Build creates a zap logger writing to stderr at the configured level.
func (l LogConfig) Build() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level=%q", ErrInvalidConfig, l.Level)
	}

	var zc zap.Config
	switch l.Format {
	case FormatJSON:
		zc = zap.NewProductionConfig()
	case FormatConsole:
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("%w: log.format=%q", ErrInvalidConfig, l.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableCaller = !l.ShowCaller
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(defaultTimeLayout)

	return zc.Build()
}
