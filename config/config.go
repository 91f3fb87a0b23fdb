// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: layered configuration (defaults < YAML file < SIMLATH_* environment)
//       and its translation into jaccard and boltstore options.

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/simlath/jaccard"
	"github.com/katalvlaran/simlath/storage/boltstore"
)

// EnvPrefix prefixes environment overrides, e.g. SIMLATH_JACCARD_GROUP_SIZE.
const EnvPrefix = "SIMLATH"

// ErrInvalidConfig wraps every value that cannot be translated into options.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full settings tree.
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Jaccard JaccardConfig `mapstructure:"jaccard"`
	Log     LogConfig     `mapstructure:"log"`
}

// StoreConfig configures the bbolt-backed store.
type StoreConfig struct {
	Path        string        `mapstructure:"path"`
	AutoFlush   bool          `mapstructure:"auto_flush"`
	CacheSize   int           `mapstructure:"cache_size"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// JaccardConfig mirrors jaccard.Options with string enums.
type JaccardConfig struct {
	EdgeLabel    string `mapstructure:"edge_label"`
	Neighborhood string `mapstructure:"neighborhood"`
	Denominator  string `mapstructure:"denominator"`
	GroupSize    int    `mapstructure:"group_size"`
	Parallelism  int    `mapstructure:"parallelism"`
	OnDegenerate string `mapstructure:"on_degenerate"`
}

// LogConfig selects level and formatter of the CLI logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path:        "simlath.db",
			AutoFlush:   true,
			CacheSize:   boltstore.DefaultCacheSize,
			OpenTimeout: time.Second,
		},
		Jaccard: JaccardConfig{
			EdgeLabel:    jaccard.DefaultEdgeLabel,
			Neighborhood: jaccard.NeighborhoodOut.String(),
			Denominator:  jaccard.DenominatorUnion.String(),
			GroupSize:    jaccard.DefaultGroupSize,
			Parallelism:  runtime.GOMAXPROCS(0),
			OnDegenerate: jaccard.DegenerateFail.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path (optional; "" means defaults and environment only) and
// applies SIMLATH_* overrides. A missing file named explicitly is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read %s: %w", path, err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every leaf key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.auto_flush", cfg.Store.AutoFlush)
	v.SetDefault("store.cache_size", cfg.Store.CacheSize)
	v.SetDefault("store.open_timeout", cfg.Store.OpenTimeout)

	v.SetDefault("jaccard.edge_label", cfg.Jaccard.EdgeLabel)
	v.SetDefault("jaccard.neighborhood", cfg.Jaccard.Neighborhood)
	v.SetDefault("jaccard.denominator", cfg.Jaccard.Denominator)
	v.SetDefault("jaccard.group_size", cfg.Jaccard.GroupSize)
	v.SetDefault("jaccard.parallelism", cfg.Jaccard.Parallelism)
	v.SetDefault("jaccard.on_degenerate", cfg.Jaccard.OnDegenerate)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
}

// JaccardOptions translates the jaccard section. Unknown enum strings return
// ErrInvalidConfig; numeric ranges are left to jaccard.New.
func (c *Config) JaccardOptions() ([]jaccard.Option, error) {
	j := c.Jaccard
	n, err := jaccard.ParseNeighborhood(j.Neighborhood)
	if err != nil {
		return nil, fmt.Errorf("%w: jaccard.neighborhood: %v", ErrInvalidConfig, err)
	}
	d, err := jaccard.ParseDenominator(j.Denominator)
	if err != nil {
		return nil, fmt.Errorf("%w: jaccard.denominator: %v", ErrInvalidConfig, err)
	}
	p, err := jaccard.ParseDegeneratePolicy(j.OnDegenerate)
	if err != nil {
		return nil, fmt.Errorf("%w: jaccard.on_degenerate: %v", ErrInvalidConfig, err)
	}

	return []jaccard.Option{
		jaccard.WithEdgeLabel(j.EdgeLabel),
		jaccard.WithNeighborhood(n),
		jaccard.WithDenominator(d),
		jaccard.WithGroupSize(j.GroupSize),
		jaccard.WithParallelism(j.Parallelism),
		jaccard.WithOnDegenerate(p),
	}, nil
}

// StoreOptions translates the store section.
func (c *Config) StoreOptions() []boltstore.Option {
	return []boltstore.Option{
		boltstore.WithAutoFlush(c.Store.AutoFlush),
		boltstore.WithCacheSize(c.Store.CacheSize),
		boltstore.WithOpenTimeout(c.Store.OpenTimeout),
	}
}

// NewLogger builds a logrus logger from the log section.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}

	l := logrus.New()
	l.SetLevel(level)
	switch strings.ToLower(c.Log.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	return l, nil
}
