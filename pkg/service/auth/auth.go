// Package auth implements signup, login and bearer token handling.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/domain/user"
	"github.com/prosperitycompass/backend/pkg/dto"
	usersvc "github.com/prosperitycompass/backend/pkg/service/user"
	"github.com/prosperitycompass/backend/pkg/utils"
)

// dummyHash is compared against when the email is unknown so a login for a
// missing user costs the same bcrypt work as a wrong password.
var dummyHash = func() string {
	h, err := utils.HashPassword("prosperity-compass-dummy")
	if err != nil {
		panic(err)
	}
	return h
}()

// Service authenticates users and issues their tokens.
type Service struct {
	users  *usersvc.Service
	tokens *TokenService
	logger *slog.Logger
}

// New creates an auth Service.
func New(
	users *usersvc.Service,
	tokens *TokenService,
	logger *slog.Logger,
) *Service {
	return &Service{users: users, tokens: tokens, logger: logger}
}

// CheckPasswordHash reports whether password matches the bcrypt hash.
func (s *Service) CheckPasswordHash(password, hash string) bool {
	return utils.CheckPasswordHash(password, hash)
}

// Signup creates the user and returns it with a freshly issued token.
func (s *Service) Signup(
	ctx context.Context,
	email string,
	name *string,
	password string,
) (*dto.UserRead, string, error) {
	log := s.logger.With("context", "Signup")
	u, err := s.users.CreateUser(ctx, email, name, password)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		log.Error("issue token failed", "userID", u.ID, "error", err)
		return nil, "", err
	}
	log.Info("signup successful", "userID", u.ID)
	return u, token, nil
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password both yield user.ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*dto.UserRead, string, error) {
	log := s.logger.With("context", "Login")
	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		_ = s.CheckPasswordHash(password, dummyHash)
		log.Warn("login failed")
		return nil, "", user.ErrInvalidCredentials
	}
	if !s.CheckPasswordHash(password, u.HashedPassword) {
		log.Warn("login failed", "userID", u.ID)
		return nil, "", user.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		log.Error("issue token failed", "userID", u.ID, "error", err)
		return nil, "", err
	}
	log.Info("login successful", "userID", u.ID)
	return u, token, nil
}

// CurrentUser loads the user behind an authenticated identity. A user that
// no longer exists yields (nil, nil).
func (s *Service) CurrentUser(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return s.users.GetUser(ctx, id)
}
