package dto

import (
	"fmt"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/utils"
)

// ConvertQuery holds the query parameters of a conversion request.
type ConvertQuery struct {
	FromCurrency string   `form:"fromCurrency" binding:"required,currency_code"`
	ToCurrency   string   `form:"toCurrency" binding:"required,currency_code"`
	Amount       *float64 `form:"amount" binding:"required,finite"`
}

// ConvertResponse is returned for a successful conversion.
type ConvertResponse struct {
	Message         string   `json:"message" example:"Converted amount: 77.72"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	Amount          float64  `json:"amount"`
	ConvertedAmount float64  `json:"convertedAmount"`
	FormattedAmount string   `json:"formattedAmount"`
	Rate            float64  `json:"rate"`
	Path            []string `json:"path"`
	Strategy        string   `json:"strategy"`
	Cached          bool     `json:"cached"`
}

// ToConvertResponse converts a domain.Conversion, rounding the display amount to precision places.
func ToConvertResponse(c *domain.Conversion, precision int) ConvertResponse {
	formatted := utils.FormatAmount(c.Converted, precision)
	return ConvertResponse{
		Message:         fmt.Sprintf("Converted amount: %s", formatted),
		From:            c.From.String(),
		To:              c.To.String(),
		Amount:          c.Amount,
		ConvertedAmount: c.Converted,
		FormattedAmount: formatted,
		Rate:            c.Rate,
		Path:            c.Path.Strings(),
		Strategy:        c.Strategy,
		Cached:          c.Cached,
	}
}

// ConfigurationResponse summarizes the live rate graph.
type ConfigurationResponse struct {
	Message    string                 `json:"message"`
	Strategy   string                 `json:"strategy"`
	Currencies []string               `json:"currencies"`
	Rates      []ExchangeRateResponse `json:"rates"`
}

// CurrencyStrings converts currency codes for serialization.
func CurrencyStrings(codes []domain.CurrencyCode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.String()
	}
	return out
}
