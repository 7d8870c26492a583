// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context, and tags loggers with the identity of
// the puzzle run they belong to.
package ctxlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key struct{}

// loggerKey is the key for the slog.Logger in a context.Context.
var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRun returns a context whose logger is tagged with the run name and a
// fresh run_id, so concurrent runs can be told apart in the log stream. The
// generated id is returned alongside.
func WithRun(ctx context.Context, name string) (context.Context, string) {
	id := uuid.NewString()
	logger := FromContext(ctx).With("run", name, "run_id", id)
	return WithLogger(ctx, logger), id
}
