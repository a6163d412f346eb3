// Package user provides business logic for user management operations.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/dto"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/prosperitycompass/backend/pkg/utils"
)

// Service provides business logic for user operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateUser hashes the password and stores a new user. The hash is computed
// before the transaction opens so no connection is held while bcrypt runs.
func (s *Service) CreateUser(
	ctx context.Context,
	email string,
	name *string,
	password string,
) (*dto.UserRead, error) {
	log := s.logger.With("context", "CreateUser")
	u, err := user.New(email, name, password)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		exists, err := repo.ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrDuplicateEmail
		}
		return repo.Create(ctx, &dto.UserCreate{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
	})
	if err != nil {
		log.Error("create user failed", "error", err)
		return nil, err
	}
	log.Info("user created", "userID", u.ID)
	return &dto.UserRead{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		HashedPassword: u.PasswordHash,
		CreatedAt:      u.CreatedAt,
	}, nil
}

// GetUser retrieves a user by ID. A missing user yields (nil, nil).
func (s *Service) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		s.logger.Error("get user failed", "userID", id, "error", err)
		return nil, err
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email, normalizing it first.
// A missing user yields (nil, nil).
func (s *Service) GetUserByEmail(
	ctx context.Context,
	email string,
) (u *dto.UserRead, err error) {
	email = utils.NormalizeEmail(email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = repo.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListUsers returns every user, newest first.
func (s *Service) ListUsers(ctx context.Context) (users []*dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		users, err = repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
