package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/dto"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user record. It returns user.ErrDuplicateEmail
	// when the email is taken.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by its ID. A missing user yields (nil, nil).
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by normalized email. A missing user yields (nil, nil).
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns every user, newest first.
	List(ctx context.Context) ([]*dto.UserRead, error)
}
