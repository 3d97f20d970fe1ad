package services

import "github.com/SscSPs/currency_converter/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Converter ConverterSvcFacade
	LoadTest  LoadTestSvc

	// SeedRates are the static rate pairs published by the service and,
	// optionally, applied at startup.
	SeedRates []domain.ExchangeRate
}
