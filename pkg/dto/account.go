package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID // User who owns the account
	Name        string
	Institution *string
	Type        string
	Subtype     *string
	Mask        *string
	CreatedAt   time.Time
}

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Institution *string   `json:"institution"`
	Type        string    `json:"type"`
	Subtype     *string   `json:"subtype"`
	Mask        *string   `json:"mask"`
	CreatedAt   time.Time `json:"createdAt"`
}
