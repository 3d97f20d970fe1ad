package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatAmount formats a float conversion result for display.
// Non-finite values render as "0" since decimal cannot represent them.
func FormatAmount(amount float64, precision int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.NewFromInt(0).String()
	}
	return FormatWithPrecision(decimal.NewFromFloat(amount), precision)
}
