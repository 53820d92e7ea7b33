package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config carries the generator settings. Precedence: flags > environment
// (LEDGEN_*) > config file > defaults.
type Config struct {
	Count   int    `mapstructure:"count"`
	OutDir  string `mapstructure:"out_dir"`
	Seed    int64  `mapstructure:"seed"`
	EndDate string `mapstructure:"end_date"`
	Catalog string `mapstructure:"catalog"`
}

// Seeded reports whether a reproducible seed was requested. Seed 0 means
// "seed from the clock".
func (c *Config) Seeded() bool {
	return c.Seed != 0
}

// flag name -> viper key, for the flags that map onto config values.
var flagKeys = map[string]string{
	"count":    "count",
	"out-dir":  "out_dir",
	"seed":     "seed",
	"end-date": "end_date",
	"catalog":  "catalog",
}

// Build assembles the configuration from defaults, an optional YAML config
// file, the environment and the given flag set.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("count", 1000)
	v.SetDefault("out_dir", "./output")
	v.SetDefault("seed", int64(0))
	v.SetDefault("end_date", "2025-09-23")
	v.SetDefault("catalog", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("ledgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("LEDGEN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; an explicit one must exist.
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("count must be non-negative, got %d", cfg.Count)
	}
	return &cfg, nil
}
