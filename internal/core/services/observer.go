package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/logctx"
)

// NopObserver discards every event.
type NopObserver struct{}

func (NopObserver) Observe(context.Context, domain.TraceEvent) {}

// LoggingObserver writes trace events at debug level. The request-scoped
// logger is used when the context carries one.
type LoggingObserver struct {
	fallback *slog.Logger
}

// NewLoggingObserver creates an observer that logs through logger when the
// context has no request logger.
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{fallback: logger}
}

func (o *LoggingObserver) Observe(ctx context.Context, event domain.TraceEvent) {
	logger, ok := logctx.FromCtx(ctx)
	if !ok {
		logger = o.fallback
	}
	if logger == nil {
		logger = slog.Default()
	}

	attrs := []any{
		slog.String("event", string(event.Kind)),
		slog.String("strategy", event.Strategy),
	}
	if event.From != "" {
		attrs = append(attrs, slog.String("from", event.From.String()), slog.String("to", event.To.String()))
	}
	if len(event.Path) > 0 {
		attrs = append(attrs, slog.Any("path", event.Path.Strings()), slog.Float64("rate", event.Rate))
	}
	if event.Kind == domain.TraceConfigured {
		attrs = append(attrs, slog.Int("rates", event.Count))
	}
	logger.Debug("Conversion trace", attrs...)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []portssvc.ConversionObserver

func (m MultiObserver) Observe(ctx context.Context, event domain.TraceEvent) {
	for _, o := range m {
		if o != nil {
			o.Observe(ctx, event)
		}
	}
}

var (
	_ portssvc.ConversionObserver = NopObserver{}
	_ portssvc.ConversionObserver = (*LoggingObserver)(nil)
	_ portssvc.ConversionObserver = MultiObserver(nil)
)
