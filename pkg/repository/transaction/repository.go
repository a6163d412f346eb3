package transaction

import (
	"context"

	"github.com/prosperitycompass/backend/pkg/dto"
)

// Repository defines ownership-scoped transaction data access.
type Repository interface {
	// Create inserts a single transaction row.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// List returns the filter's transactions ordered by posted time
	// descending, then creation time descending, capped at filter.Limit.
	List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)
}
