package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// LoadTestConfig fixes the synthetic request every load run repeats.
type LoadTestConfig struct {
	From        domain.CurrencyCode
	To          domain.CurrencyCode
	Amount      float64
	Concurrency int
	MaxRequests int
}

// DefaultLoadTestConfig converts 100 CAD to EUR, which needs an inferred route
// with the built-in seed rates.
var DefaultLoadTestConfig = LoadTestConfig{
	From:        "CAD",
	To:          "EUR",
	Amount:      100,
	Concurrency: 64,
	MaxRequests: 100000,
}

type loadTestService struct {
	BaseService
	converter portssvc.ConverterReaderSvc
	cfg       LoadTestConfig
}

// NewLoadTestService creates a load generator issuing conversions against converter.
func NewLoadTestService(converter portssvc.ConverterReaderSvc, cfg LoadTestConfig) portssvc.LoadTestSvc {
	return &loadTestService{converter: converter, cfg: cfg}
}

var _ portssvc.LoadTestSvc = (*loadTestService)(nil)

func (s *loadTestService) Run(ctx context.Context, numberOfRequests int) (*domain.LoadTestResult, error) {
	if numberOfRequests < 1 {
		return nil, fmt.Errorf("%w: numberOfRequests must be at least 1", apperrors.ErrValidation)
	}
	if s.cfg.MaxRequests > 0 && numberOfRequests > s.cfg.MaxRequests {
		return nil, fmt.Errorf("%w: numberOfRequests must not exceed %d", apperrors.ErrValidation, s.cfg.MaxRequests)
	}

	concurrency := s.cfg.Concurrency
	if concurrency <= 0 || concurrency > numberOfRequests {
		concurrency = numberOfRequests
	}

	var (
		mu      sync.Mutex
		slowest time.Duration
		sample  *domain.Conversion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	start := time.Now()
	for i := 0; i < numberOfRequests; i++ {
		g.Go(func() error {
			began := time.Now()
			conv, err := s.converter.Convert(gctx, s.cfg.From, s.cfg.To, s.cfg.Amount)
			took := time.Since(began)
			if err != nil {
				return err
			}
			mu.Lock()
			if took > slowest {
				slowest = took
			}
			if sample == nil {
				sample = conv
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Load test aborted", slog.Int("number_of_requests", numberOfRequests))
		return nil, fmt.Errorf("load test conversion failed: %w", err)
	}
	elapsed := time.Since(start)

	result := &domain.LoadTestResult{
		NumberOfRequests:    numberOfRequests,
		Concurrency:         concurrency,
		From:                s.cfg.From,
		To:                  s.cfg.To,
		Amount:              s.cfg.Amount,
		ElapsedTime:         elapsed,
		AverageResponseTime: elapsed / time.Duration(numberOfRequests),
		MaxResponseTime:     slowest,
		Sample:              sample,
	}
	s.LogInfo(ctx, "Load test completed",
		slog.Int("number_of_requests", numberOfRequests),
		slog.Int("concurrency", concurrency),
		slog.Duration("elapsed", elapsed),
		slog.Duration("average", result.AverageResponseTime))
	return result, nil
}
