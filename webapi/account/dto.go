package account

import (
	"encoding/json"
	"time"

	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/validation"
	"github.com/shopspring/decimal"
)

// CreateAccountInput represents the request body for creating an account.
type CreateAccountInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Institution *string `json:"institution" validate:"omitempty,max=255"`
	Type        string  `json:"type" validate:"required,max=64"`
	Subtype     *string `json:"subtype" validate:"omitempty,max=64"`
	Mask        *string `json:"mask" validate:"omitempty,numeric,max=4"`
}

// CreateTransactionInput represents the request body for recording a
// transaction. postedAt and amount arrive raw and are coerced after tag
// validation.
type CreateTransactionInput struct {
	AccountID string          `json:"accountId" validate:"required"`
	RawPosted json.RawMessage `json:"postedAt" swaggertype:"string" example:"2025-01-15"`
	RawAmount json.RawMessage `json:"amount" swaggertype:"string" example:"-18.75"`
	Pending   *bool           `json:"pending"`
	Merchant  *string         `json:"merchant" validate:"omitempty,max=255"`
	Category  *string         `json:"category" validate:"omitempty,max=255"`
	Note      *string         `json:"note" validate:"omitempty,max=1000"`

	PostedAt time.Time       `json:"-"`
	Amount   decimal.Decimal `json:"-"`
}

// Coerce implements validation.Coercer.
func (in *CreateTransactionInput) Coerce(e *validation.Error) {
	in.PostedAt, _ = e.Date("postedAt", in.RawPosted, true)
	in.Amount, _ = e.Amount("amount", in.RawAmount, true)
}

// ListTransactionsQuery narrows a listing to one account.
type ListTransactionsQuery struct {
	AccountID string `query:"accountId"`
}

type (
	// AccountResponse is the public view of an account.
	AccountResponse = dto.AccountRead
	// TransactionResponse is the public view of a transaction.
	TransactionResponse = dto.TransactionRead
)
