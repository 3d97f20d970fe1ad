package services_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// recordingObserver keeps every trace event it sees.
type recordingObserver struct {
	mu     sync.Mutex
	events []domain.TraceEvent
}

func (r *recordingObserver) Observe(_ context.Context, e domain.TraceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) kinds() []domain.TraceKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.TraceKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recordingObserver) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type cachedPairsReporter interface {
	CachedPairs() int
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	observer *recordingObserver
	service  portssvc.ConverterSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.observer = &recordingObserver{}

	svc, err := services.NewConversionService(services.WithObserver(suite.observer))
	suite.Require().NoError(err)
	suite.service = svc
	suite.Require().NoError(suite.service.UpdateConfiguration(suite.ctx, seedRates))
	suite.observer.reset()
}

func (suite *ConversionServiceTestSuite) cachedPairs() int {
	reporter, ok := suite.service.(cachedPairsReporter)
	suite.Require().True(ok)
	return reporter.CachedPairs()
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestConvert_Direct() {
	conv, err := suite.service.Convert(suite.ctx, "USD", "CAD", 100)

	suite.Require().NoError(err)
	suite.InDelta(134.0, conv.Converted, 1e-9)
	suite.Equal(1.34, conv.Rate)
	suite.Equal(domain.Path{"USD", "CAD"}, conv.Path)
	suite.Equal(services.StrategyDFS, conv.Strategy)
	suite.False(conv.Cached)
}

func (suite *ConversionServiceTestSuite) TestConvert_ReciprocalRoundTrip() {
	there, err := suite.service.Convert(suite.ctx, "USD", "EUR", 250)
	suite.Require().NoError(err)
	back, err := suite.service.Convert(suite.ctx, "EUR", "USD", there.Converted)
	suite.Require().NoError(err)

	suite.InDelta(250.0, back.Converted, 1e-9)
	suite.InDelta(1.0, there.Rate*back.Rate, 1e-12)
}

func (suite *ConversionServiceTestSuite) TestConvert_Indirect() {
	conv, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)

	suite.Require().NoError(err)
	suite.InDelta(77.72, conv.Converted, 1e-9)
	suite.Equal(domain.Path{"USD", "CAD", "GBP"}, conv.Path)
}

func (suite *ConversionServiceTestSuite) TestConvert_SameCurrency() {
	conv, err := suite.service.Convert(suite.ctx, "GBP", "GBP", 42.5)

	suite.Require().NoError(err)
	suite.Equal(42.5, conv.Converted)
	suite.Equal(1.0, conv.Rate)
	suite.Equal(domain.Path{"GBP"}, conv.Path)
	suite.Equal([]domain.TraceKind{domain.TraceSameCurrency}, suite.observer.kinds())

	_, err = suite.service.Convert(suite.ctx, "JPY", "JPY", 1)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *ConversionServiceTestSuite) TestConvert_UnknownCurrency() {
	_, err := suite.service.Convert(suite.ctx, "USD", "JPY", 1)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)

	_, err = suite.service.Convert(suite.ctx, "JPY", "USD", 1)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.NotErrorIs(err, apperrors.ErrNoPathFound)
}

func (suite *ConversionServiceTestSuite) TestConvert_NoPathFound() {
	suite.Require().NoError(suite.service.UpdateConfiguration(suite.ctx, []domain.ExchangeRate{
		{From: "JPY", To: "KRW", Rate: 9.1},
	}))

	_, err := suite.service.Convert(suite.ctx, "USD", "KRW", 1)
	suite.ErrorIs(err, apperrors.ErrNoPathFound)
	suite.NotErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.Contains(suite.observer.kinds(), domain.TraceNoPath)
	suite.Equal(0, suite.cachedPairs())
}

func (suite *ConversionServiceTestSuite) TestConvert_CachesRateNotAmount() {
	first, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
	suite.Require().NoError(err)
	suite.False(first.Cached)

	second, err := suite.service.Convert(suite.ctx, "USD", "GBP", 10)
	suite.Require().NoError(err)
	suite.True(second.Cached)
	suite.InDelta(7.772, second.Converted, 1e-9)
	suite.Equal(first.Path, second.Path)
	suite.Equal(1, suite.cachedPairs())

	suite.Equal([]domain.TraceKind{
		domain.TraceCacheMiss, domain.TraceIndirectPath, domain.TraceCacheHit,
	}, suite.observer.kinds())
}

func (suite *ConversionServiceTestSuite) TestUpdateConfiguration_InvalidatesCache() {
	_, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.UpdateConfiguration(suite.ctx, []domain.ExchangeRate{
		{From: "CAD", To: "GBP", Rate: 0.5},
	}))
	suite.Equal(0, suite.cachedPairs())

	conv, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
	suite.Require().NoError(err)
	suite.False(conv.Cached)
	suite.InDelta(67.0, conv.Converted, 1e-9)
}

func (suite *ConversionServiceTestSuite) TestUpdateConfiguration_AllOrNothing() {
	err := suite.service.UpdateConfiguration(suite.ctx, []domain.ExchangeRate{
		{From: "USD", To: "JPY", Rate: 151},
		{From: "USD", To: "CHF", Rate: 0},
	})
	suite.ErrorIs(err, apperrors.ErrInvalidRate)

	_, err = suite.service.Convert(suite.ctx, "USD", "JPY", 1)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.ElementsMatch([]domain.CurrencyCode{"CAD", "EUR", "GBP", "USD"}, suite.service.Currencies(suite.ctx))
}

func (suite *ConversionServiceTestSuite) TestUpdateConfiguration_RejectsBadTuples() {
	tests := []struct {
		name    string
		rate    domain.ExchangeRate
		wantErr error
	}{
		{name: "negative", rate: domain.ExchangeRate{From: "USD", To: "JPY", Rate: -3}, wantErr: apperrors.ErrInvalidRate},
		{name: "NaN", rate: domain.ExchangeRate{From: "USD", To: "JPY", Rate: math.NaN()}, wantErr: apperrors.ErrInvalidRate},
		{name: "self pair", rate: domain.ExchangeRate{From: "USD", To: "USD", Rate: 1}, wantErr: apperrors.ErrValidation},
		{name: "blank code", rate: domain.ExchangeRate{From: "", To: "USD", Rate: 1}, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.service.UpdateConfiguration(suite.ctx, []domain.ExchangeRate{tt.rate})
			suite.ErrorIs(err, tt.wantErr)
		})
	}
}

func (suite *ConversionServiceTestSuite) TestClearConfiguration_Idempotent() {
	_, err := suite.service.Convert(suite.ctx, "USD", "GBP", 1)
	suite.Require().NoError(err)

	suite.service.ClearConfiguration(suite.ctx)
	suite.service.ClearConfiguration(suite.ctx)

	suite.Empty(suite.service.Currencies(suite.ctx))
	suite.Empty(suite.service.Rates(suite.ctx))
	suite.Equal(0, suite.cachedPairs())

	_, err = suite.service.Convert(suite.ctx, "USD", "CAD", 1)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *ConversionServiceTestSuite) TestRates_IncludesReciprocals() {
	rates := suite.service.Rates(suite.ctx)

	suite.Len(rates, 6)
	suite.Contains(rates, domain.ExchangeRate{From: "USD", To: "CAD", Rate: 1.34})
	suite.Contains(rates, domain.ExchangeRate{From: "CAD", To: "USD", Rate: 1 / 1.34})
}

func (suite *ConversionServiceTestSuite) TestConvert_ConcurrentWithReconfiguration() {
	// Both generations keep every currency, so a conversion may only ever see
	// one of the two consistent answers.
	genA := []domain.ExchangeRate{{From: "USD", To: "CAD", Rate: 1.34}, {From: "CAD", To: "GBP", Rate: 0.58}}
	genB := []domain.ExchangeRate{{From: "USD", To: "CAD", Rate: 2}, {From: "CAD", To: "GBP", Rate: 0.5}}
	const wantA, wantB = 77.72, 100.0

	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			gen := genA
			if i%2 == 1 {
				gen = genB
			}
			if err := suite.service.UpdateConfiguration(suite.ctx, gen); err != nil {
				suite.Fail("update failed", err.Error())
				return
			}
		}
	}()

	results := make(chan float64, 800)
	var readers sync.WaitGroup
	for w := 0; w < 8; w++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for i := 0; i < 100; i++ {
				conv, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
				if err != nil {
					suite.Fail("convert failed", err.Error())
					return
				}
				results <- conv.Converted
			}
		}()
	}
	readers.Wait()
	close(stop)
	wg.Wait()
	close(results)

	for got := range results {
		okA := math.Abs(got-wantA) < 1e-9
		okB := math.Abs(got-wantB) < 1e-9
		suite.True(okA || okB, "torn conversion result %v", got)
	}
}

func (suite *ConversionServiceTestSuite) TestReplaceConfiguration_DropsPreviousRates() {
	suite.Require().NoError(suite.service.ReplaceConfiguration(suite.ctx, []domain.ExchangeRate{
		{From: "JPY", To: "CHF", Rate: 0.006},
	}))

	suite.Equal([]domain.CurrencyCode{"CHF", "JPY"}, suite.service.Currencies(suite.ctx))
	_, err := suite.service.Convert(suite.ctx, "USD", "CAD", 1)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.Equal([]domain.TraceKind{domain.TraceCleared, domain.TraceCachePurged, domain.TraceConfigured}, suite.observer.kinds())
}

func (suite *ConversionServiceTestSuite) TestReplaceConfiguration_InvalidKeepsGraph() {
	_, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
	suite.Require().NoError(err)

	err = suite.service.ReplaceConfiguration(suite.ctx, []domain.ExchangeRate{
		{From: "JPY", To: "CHF", Rate: 0.006},
		{From: "JPY", To: "EUR", Rate: math.NaN()},
	})
	suite.ErrorIs(err, apperrors.ErrInvalidRate)

	conv, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
	suite.Require().NoError(err)
	suite.InDelta(77.72, conv.Converted, 1e-9)
	suite.True(conv.Cached)
	suite.NotContains(suite.service.Currencies(suite.ctx), domain.CurrencyCode("JPY"))
}

func (suite *ConversionServiceTestSuite) TestConvert_ConcurrentWithReplace() {
	// Replacing with the same rates must never expose an empty graph.
	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := suite.service.ReplaceConfiguration(suite.ctx, seedRates); err != nil {
				suite.Fail("replace failed", err.Error())
				return
			}
		}
	}()

	var failures, total int64
	var mu sync.Mutex
	var readers sync.WaitGroup
	for w := 0; w < 8; w++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for i := 0; i < 500; i++ {
				conv, err := suite.service.Convert(suite.ctx, "USD", "GBP", 100)
				mu.Lock()
				total++
				if err != nil || math.Abs(conv.Converted-77.72) > 1e-9 {
					failures++
				}
				mu.Unlock()
			}
		}()
	}
	readers.Wait()
	close(stop)
	wg.Wait()

	suite.Equal(int64(4000), total)
	suite.Zero(failures, "conversions saw a partially applied configuration")
}

func (suite *ConversionServiceTestSuite) TestStrategy() {
	suite.Equal(services.StrategyDFS, suite.service.Strategy())

	svc, err := services.NewConversionService(services.WithResolver(services.NewShortestPathResolver(services.ShortestModeLegacy)))
	suite.Require().NoError(err)
	suite.Equal(services.StrategyShortestLegacy, svc.Strategy())
}

func (suite *ConversionServiceTestSuite) TestNewConversionService_BadCacheSize() {
	_, err := services.NewConversionService(services.WithResultCacheSize(0))
	suite.Error(err)
}

func (suite *ConversionServiceTestSuite) TestDefaultConverter_Singleton() {
	suite.Same(services.DefaultConverter(), services.DefaultConverter())
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
