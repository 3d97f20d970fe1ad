// Package logctx carries a request-scoped slog.Logger through a context.
package logctx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromCtx returns the logger stored in ctx, if any.
func FromCtx(ctx context.Context) (*slog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	return logger, ok && logger != nil
}

// Get returns the logger stored in ctx, or slog.Default() when there is none.
func Get(ctx context.Context) *slog.Logger {
	if logger, ok := FromCtx(ctx); ok {
		return logger
	}
	return slog.Default()
}
