package logger

import (
	"context"
	"log/slog"
)

// ContextKey is a type for context keys to avoid collisions
type ContextKey string

const (
	LoggerKey ContextKey = "logger"
)

// FromContext retrieves the logger from the context.
// If no logger is found, it returns the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// WithSubmUuid tags the context logger with a submission uuid so
// every log line of one judging run can be correlated.
func WithSubmUuid(ctx context.Context, submUuid string) context.Context {
	logger := FromContext(ctx)
	return WithLogger(ctx, logger.With("subm_uuid", submUuid))
}
