package metrics

import (
	"context"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ConversionsTotal      *prometheus.CounterVec
	ConversionPathHops    *prometheus.HistogramVec
	ConfigurationChanges  *prometheus.CounterVec
	ResultCachePurgeTotal prometheus.Counter
}

// NewMetrics registers every collector on a fresh registry so that several
// instances, one per test for example, never collide.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		ConversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversion_requests_total",
				Help: "Conversions by resolver strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),

		ConversionPathHops: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "conversion_path_hops",
				Help:    "Number of rates applied per resolved conversion",
				Buckets: []float64{1, 2, 3, 4, 6, 8, 12},
			},
			[]string{"strategy"},
		),

		ConfigurationChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_configuration_changes_total",
				Help: "Rate graph reconfigurations by kind",
			},
			[]string{"kind"},
		),

		ResultCachePurgeTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "result_cache_purges_total",
				Help: "Number of times the conversion result cache was invalidated",
			},
		),
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observer turns engine trace events into metric updates.
type Observer struct {
	m *Metrics
}

// NewObserver creates an observer backed by m.
func NewObserver(m *Metrics) *Observer {
	return &Observer{m: m}
}

var _ portssvc.ConversionObserver = (*Observer)(nil)

func (o *Observer) Observe(_ context.Context, event domain.TraceEvent) {
	switch event.Kind {
	case domain.TraceDirectPath, domain.TraceIndirectPath:
		o.m.ConversionsTotal.WithLabelValues(event.Strategy, string(event.Kind)).Inc()
		o.m.ConversionPathHops.WithLabelValues(event.Strategy).Observe(float64(event.Path.Hops()))
	case domain.TraceCacheHit, domain.TraceNoPath, domain.TraceSameCurrency:
		o.m.ConversionsTotal.WithLabelValues(event.Strategy, string(event.Kind)).Inc()
	case domain.TraceConfigured, domain.TraceCleared:
		o.m.ConfigurationChanges.WithLabelValues(string(event.Kind)).Inc()
	case domain.TraceCachePurged:
		o.m.ResultCachePurgeTotal.Inc()
	}
}
