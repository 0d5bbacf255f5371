// Package logging provides structured logging for fleetrecon using zerolog.
// Console output is used when stderr is a terminal, JSON otherwise; both are
// overridable through LOG_FORMAT and LOG_LEVEL.
//
// The comparison core is pure and never logs; extraction counts, match
// statistics and parse failures are logged at the reconcile and CLI layers.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("input", "locavia").Int("rows", n).Msg("Extracted records")
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the global logger instance.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = newLogger(os.Stderr)
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// New creates a new logger writing to w at the global level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.GlobalLevel()).
		With().
		Timestamp().
		Logger()
}

// SetVerbose lowers the global level to debug.
func SetVerbose() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defaultLogger = defaultLogger.Level(zerolog.DebugLevel)
}

// SetQuiet raises the global level to error.
func SetQuiet() {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	defaultLogger = defaultLogger.Level(zerolog.ErrorLevel)
}

// Err creates a new error log event with the given error.
func Err(err error) *zerolog.Event {
	return defaultLogger.Err(err)
}

// newLogger builds a logger with level and format resolved from the
// environment.
func newLogger(fallback io.Writer) zerolog.Logger {
	level := levelFromEnv()
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = fallback
	if useConsole() {
		writer = consoleWriter()
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
}

// useConsole reports whether stderr is a terminal and JSON was not forced.
func useConsole() bool {
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		return false
	}
	info, err := os.Stderr.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func levelFromEnv() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("DEBUG") != "" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
