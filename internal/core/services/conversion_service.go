package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// conversionService owns a rate graph and its result cache. All graph access
// goes through mu: conversions hold the read lock for the whole
// lookup/resolve/store sequence and reconfiguration holds the write lock, so a
// result can only be cached while the graph it was computed from is live.
type conversionService struct {
	BaseService
	mu        sync.RWMutex
	graph     *domain.RateGraph
	cache     *ResultCache
	cacheSize int
	resolver  portssvc.PathResolver
	observer  portssvc.ConversionObserver
	inflight  singleflight.Group
}

// ConversionServiceOption is a functional option for configuring the conversion service
type ConversionServiceOption func(*conversionService)

// WithResolver sets the path resolution strategy. Defaults to depth-first search.
func WithResolver(resolver portssvc.PathResolver) ConversionServiceOption {
	return func(s *conversionService) {
		s.resolver = resolver
	}
}

// WithObserver sets the trace observer. Defaults to discarding events.
func WithObserver(observer portssvc.ConversionObserver) ConversionServiceOption {
	return func(s *conversionService) {
		s.observer = observer
	}
}

// WithResultCacheSize bounds the number of memoized currency pairs.
func WithResultCacheSize(size int) ConversionServiceOption {
	return func(s *conversionService) {
		s.cacheSize = size
	}
}

// NewConversionService creates an independent engine with an empty rate graph.
func NewConversionService(options ...ConversionServiceOption) (portssvc.ConverterSvcFacade, error) {
	svc := &conversionService{
		graph:     domain.NewRateGraph(),
		cacheSize: DefaultResultCacheSize,
		resolver:  NewDFSResolver(),
		observer:  NopObserver{},
	}

	for _, option := range options {
		option(svc)
	}

	cache, err := NewResultCache(svc.cacheSize)
	if err != nil {
		return nil, err
	}
	svc.cache = cache

	return svc, nil
}

var _ portssvc.ConverterSvcFacade = (*conversionService)(nil)

func (s *conversionService) ClearConfiguration(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.Clear()
	s.cache.Invalidate()
	s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceCleared, Strategy: s.resolver.Name()})
	s.LogInfo(ctx, "Conversion configuration cleared")
}

func (s *conversionService) UpdateConfiguration(ctx context.Context, rates []domain.ExchangeRate) error {
	if err := s.validateRates(ctx, rates); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyRates(ctx, rates); err != nil {
		return err
	}
	s.LogInfo(ctx, "Conversion configuration updated",
		slog.Int("rates_applied", len(rates)),
		slog.Int("currencies", s.graph.Len()))
	return nil
}

func (s *conversionService) ReplaceConfiguration(ctx context.Context, rates []domain.ExchangeRate) error {
	if err := s.validateRates(ctx, rates); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.Clear()
	s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceCleared, Strategy: s.resolver.Name()})
	if err := s.applyRates(ctx, rates); err != nil {
		return err
	}
	s.LogInfo(ctx, "Conversion configuration replaced",
		slog.Int("rates_applied", len(rates)),
		slog.Int("currencies", s.graph.Len()))
	return nil
}

func (s *conversionService) validateRates(ctx context.Context, rates []domain.ExchangeRate) error {
	for i, r := range rates {
		if err := r.Validate(); err != nil {
			s.LogError(ctx, err, "Rejected conversion configuration", slog.Int("index", i))
			return fmt.Errorf("rate at index %d: %w", i, err)
		}
	}
	return nil
}

// applyRates upserts validated rates and purges the cache. Callers hold the write lock.
func (s *conversionService) applyRates(ctx context.Context, rates []domain.ExchangeRate) error {
	for _, r := range rates {
		if err := s.graph.UpsertRate(r.From, r.To, r.Rate); err != nil {
			return fmt.Errorf("failed to apply rate %s->%s: %w", r.From, r.To, err)
		}
	}
	s.cache.Invalidate()

	s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceCachePurged, Strategy: s.resolver.Name()})
	s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceConfigured, Strategy: s.resolver.Name(), Count: len(rates)})
	return nil
}

func (s *conversionService) Convert(ctx context.Context, from, to domain.CurrencyCode, amount float64) (*domain.Conversion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, code := range []domain.CurrencyCode{from, to} {
		if !s.graph.HasNode(code) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, code)
		}
	}

	strategy := s.resolver.Name()
	result := &domain.Conversion{From: from, To: to, Amount: amount, Strategy: strategy}

	if from == to {
		s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceSameCurrency, Strategy: strategy, From: from, To: to, Rate: 1})
		result.Converted = amount
		result.Rate = 1
		result.Path = domain.Path{from}
		return result, nil
	}

	if cached, ok := s.cache.Get(from, to); ok {
		s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceCacheHit, Strategy: strategy, From: from, To: to, Path: cached.Path, Rate: cached.Rate})
		return fillConversion(result, cached, true), nil
	}
	s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceCacheMiss, Strategy: strategy, From: from, To: to})

	// Concurrent misses for the same pair share one resolution. Every caller
	// holds the read lock, so the shared result belongs to the live graph.
	v, err, _ := s.inflight.Do(string(from)+"\x00"+string(to), func() (any, error) {
		if cached, ok := s.cache.Get(from, to); ok {
			return cached, nil
		}
		res, err := s.resolver.Resolve(s.graph, from, to, 1)
		if err != nil {
			return nil, err
		}
		cached := domain.CachedResult{Rate: res.Rate, Path: res.Path}
		s.cache.Put(from, to, cached)
		return cached, nil
	})
	if err != nil {
		if errors.Is(err, errPathNotFound) {
			s.observer.Observe(ctx, domain.TraceEvent{Kind: domain.TraceNoPath, Strategy: strategy, From: from, To: to})
			return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrNoPathFound, from, to)
		}
		return nil, fmt.Errorf("failed to resolve %s -> %s: %w", from, to, err)
	}

	cached := v.(domain.CachedResult)
	kind := domain.TraceIndirectPath
	if cached.Path.Hops() == 1 {
		kind = domain.TraceDirectPath
	}
	s.observer.Observe(ctx, domain.TraceEvent{Kind: kind, Strategy: strategy, From: from, To: to, Path: cached.Path, Rate: cached.Rate})

	return fillConversion(result, cached, false), nil
}

func fillConversion(c *domain.Conversion, cached domain.CachedResult, hit bool) *domain.Conversion {
	c.Rate = cached.Rate
	c.Converted = c.Amount * cached.Rate
	c.Path = append(domain.Path(nil), cached.Path...)
	c.Cached = hit
	return c
}

func (s *conversionService) Rates(ctx context.Context) []domain.ExchangeRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Edges()
}

func (s *conversionService) Currencies(ctx context.Context) []domain.CurrencyCode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.Nodes()
}

func (s *conversionService) Strategy() string {
	return s.resolver.Name()
}

// CachedPairs reports how many pairs are memoized. Used by diagnostics and tests.
func (s *conversionService) CachedPairs() int {
	return s.cache.Len()
}
