package dto

import (
	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// ExchangeRateRequest is one direct rate in a configuration request.
type ExchangeRateRequest struct {
	From string  `json:"from" binding:"required,currency_code" example:"USD"`
	To   string  `json:"to" binding:"required,currency_code,nefield=From" example:"CAD"`
	Rate float64 `json:"rate" binding:"required,gt=0" example:"1.34"`
}

// ExchangeRateResponse is a configured direct rate.
type ExchangeRateResponse struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// ToExchangeRates converts configuration requests into domain rates.
func ToExchangeRates(reqs []ExchangeRateRequest) []domain.ExchangeRate {
	rates := make([]domain.ExchangeRate, len(reqs))
	for i, r := range reqs {
		rates[i] = domain.ExchangeRate{
			From: domain.CurrencyCode(r.From),
			To:   domain.CurrencyCode(r.To),
			Rate: r.Rate,
		}
	}
	return rates
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		From: rate.From.String(),
		To:   rate.To.String(),
		Rate: rate.Rate,
	}
}

// ToListExchangeRateResponse converts domain rates to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(rate)
	}
	return responses
}
