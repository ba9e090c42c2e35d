// Package config loads rangeconst settings from the environment.
package config

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "RANGECONST_"

type Config struct {
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"warn"`
	Shell     string     `env:"SHELL" envDefault:"auto"`
	EnvPrefix string     `env:"ENV_PREFIX"`
	NoColor   bool       `env:"NO_COLOR"`
}

// Load reads RANGECONST_* variables from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: Prefix})
}

// LoadFrom reads the same variables from vars instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
