// Package money provides the fixed-point amount and currency code types used
// by transactions.
//
// Invariants:
//   - Amounts are shopspring decimals, never floats.
//   - Amounts carry at most Scale fractional digits.
//   - Amounts are strictly inside (-MaxAbs, MaxAbs).
//   - Currency code must be 3 uppercase letters.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every amount.
const Scale = 2

// MaxAbs bounds the magnitude of an amount (numeric(14,2)).
var MaxAbs = decimal.New(1, 12)

// ParseAmount parses a decimal string such as "-18.75" and validates it.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, ValidateAmount(d)
}

// ValidateAmount checks precision and range.
func ValidateAmount(d decimal.Decimal) error {
	if !d.Equal(d.Truncate(Scale)) {
		return ErrAmountPrecision
	}
	if d.Abs().GreaterThanOrEqual(MaxAbs) {
		return ErrAmountOutOfRange
	}
	return nil
}

// Format renders d with exactly Scale fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
