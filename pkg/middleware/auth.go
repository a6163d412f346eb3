// Package middleware attaches the caller's identity to protected routes.
package middleware

import (
	"errors"
	"strings"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/service/auth"
)

const (
	bearerPrefix = "Bearer "
	tokenKey     = "jwt"
	identityKey  = "identity"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID uuid.UUID
}

// AuthenticatedRequest is only ever built after the bearer token verified,
// so a handler that takes one cannot run on an anonymous request.
type AuthenticatedRequest[T any] struct {
	Identity Identity
	Payload  T
}

// Binder decodes and validates a request payload.
type Binder[T any] func(c *fiber.Ctx) (*T, error)

// Handler serves a protected route.
type Handler[T any] func(c *fiber.Ctx, req AuthenticatedRequest[T]) error

// Authenticator verifies bearer tokens with the token service key.
type Authenticator struct {
	tokens *auth.TokenService
	verify fiber.Handler
}

// NewAuthenticator configures the JWT middleware around tokens.
func NewAuthenticator(tokens *auth.TokenService) *Authenticator {
	a := &Authenticator{tokens: tokens}
	a.verify = jwtware.New(jwtware.Config{
		KeyFunc:        tokens.KeyFunc,
		Claims:         &jwt.RegisteredClaims{},
		ContextKey:     tokenKey,
		SuccessHandler: a.attach,
		ErrorHandler:   jwtError,
	})
	return a
}

// Authenticate resolves the identity behind the request's bearer token.
func (a *Authenticator) Authenticate(c *fiber.Ctx) (Identity, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
		return Identity{}, auth.ErrMissingToken
	}
	if err := a.verify(c); err != nil {
		return Identity{}, err
	}
	id, ok := c.Locals(identityKey).(Identity)
	if !ok {
		return Identity{}, auth.ErrInvalidToken
	}
	return id, nil
}

// attach runs after jwtware has extracted the token and hands the raw value
// to the token service, so requests are held to the same rules as Verify.
func (a *Authenticator) attach(c *fiber.Ctx) error {
	token, _ := c.Locals(tokenKey).(*jwt.Token)
	if token == nil {
		return auth.ErrInvalidToken
	}
	userID, err := a.tokens.Verify(token.Raw)
	if err != nil {
		return err
	}
	c.Locals(identityKey, Identity{UserID: userID})
	return nil
}

func jwtError(_ *fiber.Ctx, err error) error {
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		return auth.ErrMissingToken
	}
	return auth.ErrInvalidToken
}

// Protected builds a route handler that validates the payload first, then
// authenticates, then calls h. A nil bind leaves the payload zero.
func Protected[T any](a *Authenticator, bind Binder[T], h Handler[T]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload T
		if bind != nil {
			p, err := bind(c)
			if err != nil {
				return err
			}
			payload = *p
		}
		id, err := a.Authenticate(c)
		if err != nil {
			return err
		}
		return h(c, AuthenticatedRequest[T]{Identity: id, Payload: payload})
	}
}
