package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/config"
	"github.com/prosperitycompass/backend/pkg/domain"
)

// DefaultTokenTTL is used when the configuration carries no expiry.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrMissingToken is returned when a protected request carries no bearer token.
	ErrMissingToken = fmt.Errorf("missing token: %w", domain.ErrUnauthorized)
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)

	errUnexpectedMethod = errors.New("unexpected signing method")
)

// TokenService issues and verifies HS256 bearer tokens whose subject is the
// user id. The secret is fixed for the life of the process.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService builds a TokenService from the JWT configuration.
func NewTokenService(cfg *config.Jwt) *TokenService {
	ttl := cfg.Expiry
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for userID expiring after the configured TTL.
func (s *TokenService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a raw token and returns its subject. It is
// the only check a bearer token goes through before its subject is trusted.
func (s *TokenService) Verify(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, ErrMissingToken
	}
	token, err := jwt.ParseWithClaims(
		raw,
		&jwt.RegisteredClaims{},
		s.KeyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return s.subject(token)
}

// KeyFunc resolves the signing key and rejects anything but HS256.
func (s *TokenService) KeyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("%w: %v", errUnexpectedMethod, token.Header["alg"])
	}
	return s.secret, nil
}

// subject extracts the user id from a parsed token. Tokens without an expiry,
// or whose expiry has passed on this service's clock, are rejected.
func (s *TokenService) subject(token *jwt.Token) (uuid.UUID, error) {
	if token == nil || !token.Valid || token.Claims == nil {
		return uuid.Nil, ErrInvalidToken
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil || !s.now().Before(exp.Time) {
		return uuid.Nil, ErrInvalidToken
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
