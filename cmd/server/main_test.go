package main_test

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/prosperitycompass/backend/webapi/testutils"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	testutils.E2ETestSuite
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestHealth() {
	resp := s.MakeRequest(http.MethodGet, "/health", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *MainTestSuite) TestProtectedRoute_Unauthorized() {
	resp := s.MakeRequest(http.MethodGet, "/accounts", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *MainTestSuite) TestNotFoundRoute() {
	resp := s.MakeRequest(http.MethodGet, "/doesnotexist", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *MainTestSuite) TestSignupLoginAndTransaction() {
	resp := s.MakeRequest(http.MethodPost, "/auth/signup",
		`{"email":"e2e@example.com","password":"secret123"}`, "")
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	session := testutils.DecodeJSON[map[string]any](s.T(), resp)
	token := session["token"].(string)

	resp = s.MakeRequest(http.MethodPost, "/accounts",
		`{"name":"Checking","type":"depository"}`, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	acc := testutils.DecodeJSON[map[string]any](s.T(), resp)

	resp = s.MakeRequest(http.MethodPost, "/transactions",
		`{"accountId":"`+acc["id"].(string)+`","postedAt":"2024-01-01","amount":"-18.75"}`, token)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	tx := testutils.DecodeJSON[map[string]any](s.T(), resp)
	s.Equal("-18.75", tx["amount"])

	resp = s.MakeRequest(http.MethodGet, "/transactions", "", token)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Len(testutils.DecodeJSON[[]map[string]any](s.T(), resp), 1)
}
