// Package testutils builds fully wired fiber apps for HTTP tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/internal/fixtures/memory"
	"github.com/prosperitycompass/backend/pkg/app"
	"github.com/prosperitycompass/backend/pkg/config"
	"github.com/prosperitycompass/backend/pkg/repository"
	"github.com/prosperitycompass/backend/webapi"
	"github.com/stretchr/testify/require"
)

// NewConfig returns a configuration suitable for tests.
func NewConfig() *config.App {
	return &config.App{
		Env:      "test",
		Server:   &config.Server{Host: "127.0.0.1", Port: 0},
		Log:      &config.Log{Level: int(slog.LevelError), Format: "text"},
		DB:       &config.DB{},
		Jwt:      &config.Jwt{Secret: "test-secret", Expiry: 7 * 24 * time.Hour},
		Cors:     &config.Cors{AllowOrigins: "http://localhost:3000"},
		Currency: &config.Currency{Default: "USD"},
	}
}

// NewApp wires uow into the full HTTP stack.
func NewApp(uow repository.UnitOfWork, cfg *config.App) (*fiber.App, *app.App) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(&app.Deps{Uow: uow, Logger: logger}, cfg)
	return webapi.SetupApp(a), a
}

// NewMemoryApp returns an app backed by an in-memory unit of work.
func NewMemoryApp(t *testing.T) (*fiber.App, *app.App, *memory.UoW) {
	t.Helper()
	uow := memory.NewUoW()
	fiberApp, a := NewApp(uow, NewConfig())
	return fiberApp, a, uow
}

// MakeRequest is a helper for making HTTP requests in tests
func MakeRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// DecodeJSON reads resp's body into T and closes it.
func DecodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// Session is a signed-up user and their token.
type Session struct {
	UserID string
	Email  string
	Token  string
}

// Signup registers email through the API and returns the session.
func Signup(t *testing.T, app *fiber.App, email string) Session {
	t.Helper()
	resp := MakeRequest(t, app, http.MethodPost, "/auth/signup",
		`{"email":"`+email+`","password":"password123"}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := DecodeJSON[struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Token string `json:"token"`
	}](t, resp)
	return Session{UserID: out.User.ID, Email: out.User.Email, Token: out.Token}
}

// CreateAccount creates an account for the session and returns its id.
func CreateAccount(t *testing.T, app *fiber.App, s Session, name string) string {
	t.Helper()
	resp := MakeRequest(t, app, http.MethodPost, "/accounts",
		`{"name":"`+name+`","type":"depository","subtype":"checking","mask":"1234"}`, s.Token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := DecodeJSON[map[string]any](t, resp)
	id, _ := out["id"].(string)
	require.NotEmpty(t, id)
	return id
}
