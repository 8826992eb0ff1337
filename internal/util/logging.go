// Package util holds small helpers shared across the app: logging setup,
// data and report locations, and integer conversions.
package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger opens (appending) the log file at path and installs a zerolog
// logger writing to it as the global logger. The terminal belongs to the UI,
// so nothing is written to stdout or stderr.
func SetupLogger(path string, level zerolog.Level) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := NewLogger(f, level)
	log.Logger = logger
	return logger, f, nil
}

// NewLogger builds a timestamped logger on w.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// LogError logs err with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Error().Err(err).Msg(context)
	}
}
