package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type to avoid collisions with other packages.
type contextKey struct{}

// loggerKey is the context key for the request-scoped logger.
var loggerKey = contextKey{}

// WithLogger returns a context carrying the given logger. Handlers attach
// a request-scoped logger (e.g. one enriched with a trace ID) and lower
// layers retrieve it with FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger from the context, falling back to the
// process default when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when none was attached.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
