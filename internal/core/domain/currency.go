package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/SscSPs/currency_converter/internal/apperrors"
)

// CurrencyCode is an opaque, case-sensitive currency identifier (e.g. "USD").
// Codes are not checked against any external standard.
type CurrencyCode string

func (c CurrencyCode) String() string {
	return string(c)
}

// ValidateCode rejects blank codes and codes containing whitespace.
func ValidateCode(code CurrencyCode) error {
	if strings.TrimSpace(string(code)) == "" {
		return fmt.Errorf("%w: currency code must not be blank", apperrors.ErrValidation)
	}
	if strings.IndexFunc(string(code), unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: currency code %q must not contain whitespace", apperrors.ErrValidation, code)
	}
	return nil
}
