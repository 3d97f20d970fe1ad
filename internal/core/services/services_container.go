package services

import (
	"fmt"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, seedRates []domain.ExchangeRate, observer portssvc.ConversionObserver) (*portssvc.ServiceContainer, error) {
	resolver, err := NewResolver(cfg.ResolverStrategy)
	if err != nil {
		return nil, err
	}

	converter, err := NewConversionService(
		WithResolver(resolver),
		WithObserver(observer),
		WithResultCacheSize(cfg.ResultCacheSize),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion service: %w", err)
	}

	loadTest := NewLoadTestService(converter, LoadTestConfig{
		From:        domain.CurrencyCode(cfg.LoadTestFrom),
		To:          domain.CurrencyCode(cfg.LoadTestTo),
		Amount:      cfg.LoadTestAmount,
		Concurrency: cfg.LoadTestConcurrency,
		MaxRequests: cfg.LoadTestMaxRequests,
	})

	return &portssvc.ServiceContainer{
		Converter: converter,
		LoadTest:  loadTest,
		SeedRates: seedRates,
	}, nil
}
