package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/dto"
)

// Repository defines ownership-scoped account data access. Every read takes
// the owning user id; there is no unscoped lookup.
type Repository interface {
	// Create inserts a new account record.
	Create(ctx context.Context, create dto.AccountCreate) error

	// GetOwned returns the account only if it belongs to userID.
	// A missing or foreign account yields (nil, nil).
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*dto.AccountRead, error)

	// ListByUser returns the user's accounts, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.AccountRead, error)
}
