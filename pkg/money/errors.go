package money

import "errors"

var (
	// ErrInvalidAmount is returned when an amount cannot be parsed as a decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrAmountPrecision is returned when an amount has more fractional
	// digits than the store keeps.
	ErrAmountPrecision = errors.New("amount has too many decimal places")

	// ErrAmountOutOfRange is returned when an amount does not fit the
	// numeric(14,2) column.
	ErrAmountOutOfRange = errors.New("amount out of range")

	// ErrInvalidCurrency is returned for anything but a 3-letter code.
	ErrInvalidCurrency = errors.New("invalid currency code")
)
