package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/infra/repository/account"
	"github.com/prosperitycompass/backend/infra/repository/transaction"
	"github.com/prosperitycompass/backend/pkg/repository/seed"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed seed repository.
func New(db *gorm.DB) seed.Repository {
	return &repository{db: db}
}

// Purge implements seed.Repository.
func (r *repository) Purge(
	ctx context.Context,
	userID *uuid.UUID,
	tag seed.Tag,
) (seed.Purged, error) {
	var purged seed.Purged

	tagged := r.db.Model(&account.Account{}).Select("id").Where("institution = ?", tag.Institution)
	if userID != nil {
		tagged = tagged.Where("user_id = ?", *userID)
	}

	txDel := r.db.WithContext(ctx).Where("note = ? OR account_id IN (?)", tag.Note, tagged)
	if userID != nil {
		txDel = txDel.Where("user_id = ?", *userID)
	}
	res := txDel.Delete(&transaction.Transaction{})
	if res.Error != nil {
		return purged, res.Error
	}
	purged.Transactions = res.RowsAffected

	accDel := r.db.WithContext(ctx).Where("institution = ?", tag.Institution)
	if userID != nil {
		accDel = accDel.Where("user_id = ?", *userID)
	}
	res = accDel.Delete(&account.Account{})
	if res.Error != nil {
		return purged, res.Error
	}
	purged.Accounts = res.RowsAffected
	return purged, nil
}

var _ seed.Repository = (*repository)(nil)
