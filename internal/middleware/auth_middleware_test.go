package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-catalog-ws/pkg/jwt"
)

func newApp(tokens *jwt.Manager, enabled bool) *fiber.App {
	app := fiber.New()
	app.Post("/guarded",
		RequireAuth(tokens, enabled),
		RequirePrivilege("product:create", enabled),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)
	return app
}

func status(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthDisabledPassesThrough(t *testing.T) {
	app := newApp(jwt.NewManager("secret", time.Hour), false)

	assert.Equal(t, fiber.StatusNoContent, status(t, app, ""))
}

func TestAuthEnabled(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	app := newApp(tokens, true)

	granted, _, err := tokens.GenerateToken("admin", []string{"product:create"})
	require.NoError(t, err)
	lacking, _, err := tokens.GenerateToken("admin", []string{"product:delete"})
	require.NoError(t, err)
	foreign, _, err := jwt.NewManager("other", time.Hour).GenerateToken("admin", []string{"product:create"})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"bad signature", "Bearer " + foreign, fiber.StatusUnauthorized},
		{"missing privilege", "Bearer " + lacking, fiber.StatusForbidden},
		{"granted", "Bearer " + granted, fiber.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status(t, app, tc.header))
		})
	}
}
