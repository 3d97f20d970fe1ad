package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/currency_converter/internal/apperrors"
)

// ExchangeRate is a single configured direct rate: one unit of From buys Rate units of To.
type ExchangeRate struct {
	From CurrencyCode `json:"from" yaml:"from"`
	To   CurrencyCode `json:"to" yaml:"to"`
	Rate float64      `json:"rate" yaml:"rate"`
}

// Validate checks the tuple without touching any graph.
func (r ExchangeRate) Validate() error {
	if err := ValidateCode(r.From); err != nil {
		return err
	}
	if err := ValidateCode(r.To); err != nil {
		return err
	}
	if r.From == r.To {
		return fmt.Errorf("%w: from and to currency codes cannot be the same (%s)", apperrors.ErrValidation, r.From)
	}
	if math.IsNaN(r.Rate) || math.IsInf(r.Rate, 0) || r.Rate <= 0 {
		return fmt.Errorf("%w: rate %s->%s must be a positive number, got %v", apperrors.ErrInvalidRate, r.From, r.To, r.Rate)
	}
	return nil
}
