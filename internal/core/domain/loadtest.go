package domain

import "time"

// LoadTestResult summarizes one synthetic load run.
type LoadTestResult struct {
	NumberOfRequests    int
	Concurrency         int
	From                CurrencyCode
	To                  CurrencyCode
	Amount              float64
	ElapsedTime         time.Duration
	AverageResponseTime time.Duration
	MaxResponseTime     time.Duration
	// Sample is the conversion returned by the first request to finish.
	Sample *Conversion
}
