package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	domainuser "github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository/user"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed user repository.
func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	u := &User{
		ID:           create.ID,
		Email:        create.Email,
		Name:         create.Name,
		PasswordHash: create.PasswordHash,
		CreatedAt:    create.CreatedAt,
	}
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainuser.ErrDuplicateEmail
	}
	return err
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(
		ctx,
	).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var u User
	if err := r.db.WithContext(
		ctx,
	).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&u), nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(
		ctx,
	).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) List(
	ctx context.Context,
) ([]*dto.UserRead, error) {
	var users []User
	if err := r.db.WithContext(
		ctx,
	).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.UserRead, 0, len(users))
	for i := range users {
		result = append(result, mapModelToDTO(&users[i]))
	}
	return result, nil
}

func mapModelToDTO(u *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		HashedPassword: u.PasswordHash,
		CreatedAt:      u.CreatedAt,
	}
}

var _ user.Repository = (*repository)(nil)
