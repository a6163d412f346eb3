package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/money"
	"github.com/shopspring/decimal"
)

// Transaction is a signed monetary movement on one account. A negative
// Amount is an outflow. UserID duplicates the account owner so listings can
// filter by owner without a join.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AccountID uuid.UUID
	PostedAt  time.Time
	Amount    decimal.Decimal
	Pending   bool
	Currency  money.Code
	Merchant  *string
	Category  *string
	Note      *string
	CreatedAt time.Time
}

// Posting carries the caller-supplied fields of a new transaction.
type Posting struct {
	PostedAt time.Time
	Amount   decimal.Decimal
	Pending  bool
	Currency money.Code
	Merchant *string
	Category *string
	Note     *string
}

// Post creates a transaction on a for userID. It fails with
// ErrForbiddenAccount unless userID owns the account, so a transaction can
// only ever be built against an owned account.
func (a *Account) Post(userID uuid.UUID, p Posting) (*Transaction, error) {
	if !a.OwnedBy(userID) {
		return nil, ErrForbiddenAccount
	}
	if err := money.ValidateAmount(p.Amount); err != nil {
		return nil, err
	}
	code := p.Currency
	if code == "" {
		code = money.DefaultCode
	}
	if !code.IsValid() {
		return nil, money.ErrInvalidCurrency
	}
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		AccountID: a.ID,
		PostedAt:  p.PostedAt.UTC(),
		Amount:    p.Amount,
		Pending:   p.Pending,
		Currency:  code,
		Merchant:  p.Merchant,
		Category:  p.Category,
		Note:      p.Note,
		CreatedAt: time.Now().UTC(),
	}, nil
}
