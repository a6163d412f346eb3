package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/prosperitycompass/backend/pkg/config"
	"github.com/prosperitycompass/backend/pkg/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value string
}

var errBadPayload = errors.New("bad payload")

func newTestApp(t *testing.T, bind Binder[payload]) (*fiber.App, *auth.TokenService) {
	t.Helper()
	tokens := auth.NewTokenService(&config.Jwt{Secret: "middleware-secret", Expiry: time.Hour})
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			switch {
			case errors.Is(err, auth.ErrMissingToken):
				return c.Status(fiber.StatusUnauthorized).SendString("missing")
			case errors.Is(err, auth.ErrInvalidToken):
				return c.Status(fiber.StatusUnauthorized).SendString("invalid")
			case errors.Is(err, errBadPayload):
				return c.Status(fiber.StatusBadRequest).SendString("bad payload")
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	app.Get("/", Protected(NewAuthenticator(tokens), bind, func(c *fiber.Ctx, req AuthenticatedRequest[payload]) error {
		return c.SendString(req.Identity.UserID.String() + ":" + req.Payload.Value)
	}))
	return app, tokens
}

func do(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestProtected_AttachesIdentity(t *testing.T) {
	app, tokens := newTestApp(t, func(*fiber.Ctx) (*payload, error) { return &payload{Value: "ok"}, nil })
	id := uuid.New()
	token, err := tokens.Issue(id)
	require.NoError(t, err)

	status, body := do(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, id.String()+":ok", body)
}

func TestProtected_MissingToken(t *testing.T) {
	app, _ := newTestApp(t, nil)
	for _, header := range []string{"", "Bearer", "Bearer ", "Token abc", "bearer abc"} {
		status, body := do(t, app, header)
		assert.Equal(t, fiber.StatusUnauthorized, status, header)
		assert.Equal(t, "missing", body, header)
	}
}

func TestProtected_InvalidToken(t *testing.T) {
	app, _ := newTestApp(t, nil)
	other := auth.NewTokenService(&config.Jwt{Secret: "someone-else", Expiry: time.Hour})
	foreign, err := other.Issue(uuid.New())
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString([]byte("middleware-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{"garbage": "abc.def.ghi", "foreign": foreign, "no exp": noExp} {
		status, body := do(t, app, "Bearer "+token)
		assert.Equal(t, fiber.StatusUnauthorized, status, name)
		assert.Equal(t, "invalid", body, name)
	}
}

func TestProtected_ValidationRunsBeforeAuth(t *testing.T) {
	app, _ := newTestApp(t, func(*fiber.Ctx) (*payload, error) { return nil, errBadPayload })

	status, body := do(t, app, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "bad payload", body)
}

func TestProtected_UsesTokenServiceRules(t *testing.T) {
	app, tokens := newTestApp(t, nil)

	nonUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("middleware-secret"))
	require.NoError(t, err)
	status, body := do(t, app, "Bearer "+nonUUID)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid", body)

	valid, err := tokens.Issue(uuid.New())
	require.NoError(t, err)
	tokens.WithClock(func() time.Time { return time.Now().Add(2 * time.Hour) })
	status, body = do(t, app, "Bearer "+valid)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid", body)
}
