package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user.
type UserCreate struct {
	ID           uuid.UUID
	Email        string
	Name         *string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRead represents a read-optimized view of a user. HashedPassword is
// never serialized.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           *string   `json:"name"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}
