package coach_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prosperitycompass/backend/webapi/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	app, _, _ := testutils.NewMemoryApp(t)

	resp := testutils.MakeRequest(t, app, http.MethodPost, "/ai/chat", `{"message":"What's a 50/30/20 budget?"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeJSON[map[string]string](t, resp)
	assert.Contains(t, out["reply"], "50/30/20")

	resp = testutils.MakeRequest(t, app, http.MethodPost, "/ai/chat", `{"message":""}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
