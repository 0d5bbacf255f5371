package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key for the logger.
const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithFamily tags the context logger with the entity family being
// reconciled (models, colors, options).
func WithFamily(ctx context.Context, family string) context.Context {
	logger := FromContext(ctx).With().Str("family", family).Logger()
	return WithLogger(ctx, &logger)
}

// WithInput tags the context logger with the logical input being parsed.
func WithInput(ctx context.Context, input string) context.Context {
	logger := FromContext(ctx).With().Str("input", input).Logger()
	return WithLogger(ctx, &logger)
}
