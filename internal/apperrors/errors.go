package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRate indicates a configured exchange rate that is not a positive finite number.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrUnknownCurrency indicates a currency code that is not present in the configured rate graph.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrNoPathFound indicates that both currencies are known but no chain of rates connects them.
var ErrNoPathFound = errors.New("no conversion path found")
