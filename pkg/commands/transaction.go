package commands

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransaction is a DTO for recording a transaction (command pattern).
// AccountID is kept as the raw client value; a malformed id is treated the
// same as an account the caller does not own.
type CreateTransaction struct {
	AccountID string
	PostedAt  time.Time
	Amount    decimal.Decimal
	Pending   bool
	Merchant  *string
	Category  *string
	Note      *string
}
