package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/domain"
	"github.com/prosperitycompass/backend/pkg/utils"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = fmt.Errorf("user not found: %w", domain.ErrNotFound)
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = fmt.Errorf("email already in use: %w", domain.ErrAlreadyExists)
	// ErrInvalidCredentials is returned by login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)

	errEmptyEmail      = fmt.Errorf("email cannot be empty: %w", domain.ErrValidation)
	errInvalidEmail    = fmt.Errorf("invalid email: %w", domain.ErrValidation)
	errEmptyPassword   = fmt.Errorf("password cannot be empty: %w", domain.ErrValidation)
	errPasswordTooLong = fmt.Errorf("password must be at most %d bytes: %w", utils.MaxPasswordBytes, domain.ErrValidation)
)

// User represents a registered person. PasswordHash is a bcrypt hash and
// never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         *string
	PasswordHash string
	CreatedAt    time.Time
}

// New creates a User with a normalized email and a hashed password.
func New(email string, name *string, password string) (*User, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, errEmptyEmail
	}
	if !utils.IsEmail(email) {
		return nil, errInvalidEmail
	}
	if password == "" {
		return nil, errEmptyPassword
	}
	if len(password) > utils.MaxPasswordBytes {
		return nil, errPasswordTooLong
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
