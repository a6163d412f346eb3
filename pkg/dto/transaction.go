package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is used when creating a new transaction.
type TransactionCreate struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	PostedAt  time.Time
	Amount    decimal.Decimal
	Pending   bool
	Currency  string
	Merchant  *string
	Category  *string
	Note      *string
	CreatedAt time.Time
}

// TransactionRead is a read-optimized DTO for transaction queries and API
// responses. Amount serializes as a decimal string.
type TransactionRead struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	AccountID uuid.UUID       `json:"accountId"`
	PostedAt  time.Time       `json:"postedAt"`
	Amount    decimal.Decimal `json:"amount"`
	Pending   bool            `json:"pending"`
	Currency  string          `json:"currency"`
	Merchant  *string         `json:"merchant"`
	Category  *string         `json:"category"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TransactionFilter scopes a transaction listing. UserID is always applied.
type TransactionFilter struct {
	UserID    uuid.UUID
	AccountID *uuid.UUID
	Limit     int
}
