package seed

import (
	"context"

	"github.com/google/uuid"
)

// Tag identifies rows written by the demo seeder.
type Tag struct {
	Note        string // transactions.note
	Institution string // accounts.institution
}

// Purged reports how many rows a purge removed.
type Purged struct {
	Transactions int64
	Accounts     int64
}

// Repository removes seeded demo data. It is only used by the admin CLI.
type Repository interface {
	// Purge deletes tagged transactions (and every transaction of tagged
	// accounts), then the tagged accounts. A nil userID purges all users.
	Purge(ctx context.Context, userID *uuid.UUID, tag Tag) (Purged, error)
}
