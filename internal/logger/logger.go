// Package logger builds the structured zerolog logger used by the qlath
// command-line tools.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error, disabled
	Pretty bool      // human-readable console output
	Out    io.Writer // defaults to os.Stderr
}

// ParseLevel maps a level name to a zerolog level, defaulting to info for
// empty or unknown names. "warning" and "off" are accepted as aliases.
func ParseLevel(s string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "warning":
		name = zerolog.WarnLevel.String()
	case "off":
		name = zerolog.Disabled.String()
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Out != nil {
		output = cfg.Out
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}
