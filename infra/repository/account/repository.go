package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository/account"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed account repository.
func New(db *gorm.DB) account.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(
	ctx context.Context,
	create dto.AccountCreate,
) error {
	m := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&m).Error
}

// GetOwned implements account.Repository. The row is share-locked so the
// account cannot disappear before a dependent insert in the same transaction.
func (r *repository) GetOwned(
	ctx context.Context,
	id, userID uuid.UUID,
) (*dto.AccountRead, error) {
	var m Account
	err := r.db.WithContext(
		ctx,
	).Clauses(
		clause.Locking{Strength: "SHARE"},
	).Where(
		"id = ? AND user_id = ?",
		id,
		userID,
	).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToReadDTO(&m), nil
}

// ListByUser implements account.Repository.
func (r *repository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.AccountRead, error) {
	var models []Account
	if err := r.db.WithContext(
		ctx,
	).Where(
		"user_id = ?",
		userID,
	).Order(
		"created_at DESC, id DESC",
	).Find(
		&models,
	).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(models))
	for i := range models {
		result = append(result, mapModelToReadDTO(&models[i]))
	}
	return result, nil
}

func mapCreateDTOToModel(c dto.AccountCreate) Account {
	return Account{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Institution: c.Institution,
		Type:        c.Type,
		Subtype:     c.Subtype,
		Mask:        c.Mask,
		CreatedAt:   c.CreatedAt,
	}
}

func mapModelToReadDTO(m *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Institution: m.Institution,
		Type:        m.Type,
		Subtype:     m.Subtype,
		Mask:        m.Mask,
		CreatedAt:   m.CreatedAt,
	}
}

var _ account.Repository = (*repository)(nil)
