package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// ConverterReaderSvc defines read operations against the live rate configuration
type ConverterReaderSvc interface {
	// Convert converts amount of from into to, inferring a multi-hop route when
	// no direct rate is configured.
	Convert(ctx context.Context, from, to domain.CurrencyCode, amount float64) (*domain.Conversion, error)

	// Rates returns every configured directed rate, reciprocals included.
	Rates(ctx context.Context) []domain.ExchangeRate

	// Currencies lists every currency that appears in the configuration.
	Currencies(ctx context.Context) []domain.CurrencyCode

	// Strategy names the path resolver in use.
	Strategy() string
}

// ConverterWriterSvc defines operations that reconfigure the rate graph
type ConverterWriterSvc interface {
	// ClearConfiguration drops every rate and cached result. Calling it twice is harmless.
	ClearConfiguration(ctx context.Context)

	// UpdateConfiguration merges rates into the graph. Either every tuple is applied or none is.
	UpdateConfiguration(ctx context.Context, rates []domain.ExchangeRate) error

	// ReplaceConfiguration swaps the whole graph for rates in one step, so
	// conversions see either the old rates or the new ones. Invalid input leaves
	// the graph unchanged.
	ReplaceConfiguration(ctx context.Context, rates []domain.ExchangeRate) error
}

// ConverterSvcFacade combines the conversion read and write interfaces
type ConverterSvcFacade interface {
	ConverterReaderSvc
	ConverterWriterSvc
}

// PathResolver finds a route between two currencies in a rate graph and
// compounds the rates along it. Implementations only read the graph.
type PathResolver interface {
	Name() string
	Resolve(graph *domain.RateGraph, from, to domain.CurrencyCode, amount float64) (domain.Resolution, error)
}

// ConversionObserver receives trace events from the conversion engine.
// Observe is called while the engine holds its lock and must not call back into the engine.
type ConversionObserver interface {
	Observe(ctx context.Context, event domain.TraceEvent)
}

// LoadTestSvc drives synthetic conversion load against the engine
type LoadTestSvc interface {
	Run(ctx context.Context, numberOfRequests int) (*domain.LoadTestResult, error)
}
