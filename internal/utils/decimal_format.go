package utils

import "github.com/shopspring/decimal"

// ResponseTimePrecision is the number of decimal places kept for averaged timings.
const ResponseTimePrecision = 2

// RoundWithPrecision rounds amount half away from zero to the given places.
// Example: 12.3456 with precision 2 returns 12.35
func RoundWithPrecision(amount decimal.Decimal, precision int) decimal.Decimal {
	return amount.Round(int32(precision))
}

// ParseDecimalOrZero parses s, returning zero for empty or malformed input.
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
