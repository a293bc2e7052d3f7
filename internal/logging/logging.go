// Package logging builds the zerolog logger used by the runner and CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/reconf/internal/config"
)

// New returns a logger writing to stderr in the configured format and level.
func New(cfg *config.Config) zerolog.Logger {
	return NewWriter(os.Stderr, cfg)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, cfg *config.Config) zerolog.Logger {
	out := w
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(out).
		With().Timestamp().Str("solver", "idastar").Logger().
		Level(level(cfg.LogLevel))
}

func level(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
