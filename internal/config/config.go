// Package config loads runtime settings for the reconf command from the
// environment, after an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix, e.g. RECONF_TIMEOUT.
const Prefix = "RECONF"

// Config validation errors
var (
	ErrInvalidTimeout   = errors.New("timeout must be positive")
	ErrInvalidWorkers   = errors.New("workers must be positive")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidMaxStates = errors.New("verify_max_states must be positive")
)

// Config holds every tunable of a reconf process.
type Config struct {
	// Timeout bounds a single solve; an expired solve is indeterminate.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"60s"`
	// Workers bounds concurrent solves in batch mode.
	Workers int `envconfig:"WORKERS" default:"4"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string `envconfig:"METRICS_ADDR" default:""`

	// Verify cross-checks every answer against the breadth-first oracle.
	Verify          bool `envconfig:"VERIFY" default:"false"`
	VerifyMaxStates int  `envconfig:"VERIFY_MAX_STATES" default:"200000"`
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables already set, then decodes and validates Config.
// An empty envFile skips the file step.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", envFile, err)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func Validate(cfg *Config) error {
	if cfg.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if cfg.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.Verify && cfg.VerifyMaxStates <= 0 {
		return ErrInvalidMaxStates
	}

	return nil
}
