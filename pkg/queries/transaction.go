// Package queries contains read-side request DTOs.
package queries

import "github.com/google/uuid"

// ListTransactions selects the caller's transactions, optionally narrowed to
// one account. An AccountID that is not a UUID matches nothing.
type ListTransactions struct {
	UserID    uuid.UUID
	AccountID string
}
