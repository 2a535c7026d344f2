// Package logging carries the run-scoped structured logger through contexts,
// so every stage of one analysis run logs with the same correlation fields.
package logging

import (
	"context"
	"log/slog"
)

type contextKey string

// loggerKey is the key used to store the logger in the context.
const loggerKey = contextKey("logger")

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the run-scoped logger from the context. It returns
// the default logger if none is stored.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
