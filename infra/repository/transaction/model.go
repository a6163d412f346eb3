package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted financial transaction.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_posted,priority:1"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_account_posted,priority:1"`
	PostedAt  time.Time       `gorm:"not null;index:idx_transactions_user_posted,priority:2,sort:desc;index:idx_transactions_account_posted,priority:2,sort:desc"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Pending   bool            `gorm:"not null"`
	Currency  string          `gorm:"type:char(3);not null"`
	Merchant  *string         `gorm:"size:255"`
	Category  *string         `gorm:"size:255"`
	Note      *string         `gorm:"size:1000"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
