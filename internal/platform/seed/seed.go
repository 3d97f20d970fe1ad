// Package seed provides the static exchange rate pairs the service publishes
// and can apply at startup.
package seed

import (
	"fmt"
	"os"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// DefaultRates are used when no seed file is configured.
func DefaultRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{From: "USD", To: "CAD", Rate: 1.34},
		{From: "CAD", To: "GBP", Rate: 0.58},
		{From: "USD", To: "EUR", Rate: 0.86},
	}
}

// File is the on-disk seed format:
//
//	rates:
//	  - from: USD
//	    to: CAD
//	    rate: 1.34
type File struct {
	Rates []domain.ExchangeRate `yaml:"rates"`
}

// Load reads seed rates from path, or returns DefaultRates when path is empty.
// Every rate is validated.
func Load(path string) ([]domain.ExchangeRate, error) {
	if path == "" {
		return DefaultRates(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a seed document.
func Parse(b []byte) ([]domain.ExchangeRate, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, r := range f.Rates {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("seed rate %d: %w", i, err)
		}
	}
	return f.Rates, nil
}
