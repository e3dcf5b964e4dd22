// Package logging builds the zerolog loggers used across MyStack.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger at the given level, defaulting to info for
// unknown level names.
func New(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)

	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}

// Silent creates a logger that discards all output.
func Silent() zerolog.Logger {
	return zerolog.New(io.Discard)
}
