package transaction

import (
	"context"

	"github.com/prosperitycompass/backend/pkg/dto"
	repo "github.com/prosperitycompass/backend/pkg/repository/transaction"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed transaction repository.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(
	ctx context.Context,
	create dto.TransactionCreate,
) error {
	m := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&m).Error
}

// List implements transaction.Repository.
func (r *repository) List(
	ctx context.Context,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var txs []Transaction
	if err := q.Order(
		"posted_at DESC, created_at DESC, id DESC",
	).Find(
		&txs,
	).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToReadDTO(&txs[i]))
	}
	return result, nil
}

func mapCreateDTOToModel(c dto.TransactionCreate) Transaction {
	return Transaction{
		ID:        c.ID,
		UserID:    c.UserID,
		AccountID: c.AccountID,
		PostedAt:  c.PostedAt,
		Amount:    c.Amount,
		Pending:   c.Pending,
		Currency:  c.Currency,
		Merchant:  c.Merchant,
		Category:  c.Category,
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}

func mapModelToReadDTO(m *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:        m.ID,
		UserID:    m.UserID,
		AccountID: m.AccountID,
		PostedAt:  m.PostedAt,
		Amount:    m.Amount,
		Pending:   m.Pending,
		Currency:  m.Currency,
		Merchant:  m.Merchant,
		Category:  m.Category,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}

var _ repo.Repository = (*repository)(nil)
