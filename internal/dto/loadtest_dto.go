package dto

import (
	"time"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// LoadTestQuery holds the query parameters of a load test run.
type LoadTestQuery struct {
	NumberOfRequests int `form:"numberOfRequests" binding:"required,min=1"`
}

// LoadTestResponse reports the timings of a load test run. Durations are in milliseconds.
type LoadTestResponse struct {
	NumberOfRequests    int              `json:"numberOfRequests"`
	Concurrency         int              `json:"concurrency"`
	ElapsedTime         int64            `json:"elapsedTime"`
	AverageResponseTime float64          `json:"averageResponseTime"`
	MaxResponseTime     float64          `json:"maxResponseTime"`
	Sample              *ConvertResponse `json:"sample,omitempty"`
}

// ToLoadTestResponse converts a domain.LoadTestResult to LoadTestResponse DTO
func ToLoadTestResponse(r *domain.LoadTestResult, precision int) LoadTestResponse {
	resp := LoadTestResponse{
		NumberOfRequests:    r.NumberOfRequests,
		Concurrency:         r.Concurrency,
		ElapsedTime:         r.ElapsedTime.Milliseconds(),
		AverageResponseTime: millis(r.AverageResponseTime),
		MaxResponseTime:     millis(r.MaxResponseTime),
	}
	if r.Sample != nil {
		sample := ToConvertResponse(r.Sample, precision)
		resp.Sample = &sample
	}
	return resp
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
