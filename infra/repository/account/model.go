package account

import (
	"time"

	"github.com/google/uuid"
)

// Account represents an account record in the database.
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_accounts_user_created,priority:1"`
	Name        string    `gorm:"size:255;not null"`
	Institution *string   `gorm:"size:255"`
	Type        string    `gorm:"size:64;not null"`
	Subtype     *string   `gorm:"size:64"`
	Mask        *string   `gorm:"size:4"`
	CreatedAt   time.Time `gorm:"index:idx_accounts_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
