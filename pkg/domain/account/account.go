package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/domain"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = fmt.Errorf("account not found: %w", domain.ErrNotFound)

	// ErrForbiddenAccount is returned when a transaction targets an account
	// that does not exist or belongs to someone else. Both cases share one
	// error so callers cannot tell foreign account ids from missing ones.
	ErrForbiddenAccount = fmt.Errorf("account not found or not yours: %w", domain.ErrForbidden)

	errUserRequired = fmt.Errorf("userID is required: %w", domain.ErrValidation)
	errNameRequired = fmt.Errorf("name is required: %w", domain.ErrValidation)
	errTypeRequired = fmt.Errorf("type is required: %w", domain.ErrValidation)
)

// Account is a named financial account owned by exactly one user.
//
// Invariants:
//   - UserID is never uuid.Nil.
//   - ID is immutable once built.
//   - Mask is display-only and never used for lookups.
type Account struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Institution *string
	Type        string
	Subtype     *string
	Mask        *string
	CreatedAt   time.Time
}

// OwnedBy reports whether userID owns the account.
func (a *Account) OwnedBy(userID uuid.UUID) bool {
	return a != nil && a.UserID == userID
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id          uuid.UUID
	userID      uuid.UUID
	name        string
	institution *string
	typ         string
	subtype     *string
	mask        *string
	createdAt   time.Time
}

// New creates a new Builder with a fresh id and the current time.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owner. This is a mandatory field.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithName sets the display name, trimmed.
func (b *Builder) WithName(name string) *Builder {
	b.name = strings.TrimSpace(name)
	return b
}

// WithType sets the account type, e.g. depository or credit.
func (b *Builder) WithType(typ string) *Builder {
	b.typ = strings.TrimSpace(typ)
	return b
}

// WithInstitution sets the optional institution name.
func (b *Builder) WithInstitution(institution *string) *Builder {
	b.institution = institution
	return b
}

// WithSubtype sets the optional subtype, e.g. checking.
func (b *Builder) WithSubtype(subtype *string) *Builder {
	b.subtype = subtype
	return b
}

// WithMask sets the display-only trailing digits.
func (b *Builder) WithMask(mask *string) *Builder {
	b.mask = mask
	return b
}

// WithCreatedAt sets the creation timestamp. This is primarily for hydrating
// an existing account from a data store.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the owner, name and type before returning the Account.
func (b *Builder) Build() (*Account, error) {
	if b.userID == uuid.Nil {
		return nil, errUserRequired
	}
	if b.name == "" {
		return nil, errNameRequired
	}
	if b.typ == "" {
		return nil, errTypeRequired
	}
	return &Account{
		ID:          b.id,
		UserID:      b.userID,
		Name:        b.name,
		Institution: b.institution,
		Type:        b.typ,
		Subtype:     b.subtype,
		Mask:        b.mask,
		CreatedAt:   b.createdAt,
	}, nil
}
