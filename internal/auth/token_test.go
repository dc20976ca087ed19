package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractVia(t *testing.T, mutate func(*http.Request)) string {
	t.Helper()

	var got string
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ExtractAccessToken(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	mutate(req)

	_, err := app.Test(req)
	require.NoError(t, err)
	return got
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie wins over header", func(t *testing.T) {
		got := extractVia(t, func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
			r.Header.Set("Authorization", "Bearer header-token")
		})
		assert.Equal(t, "cookie-token", got)
	})

	t.Run("Bearer header as fallback", func(t *testing.T) {
		got := extractVia(t, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer header-token")
		})
		assert.Equal(t, "header-token", got)
	})

	t.Run("Wrong scheme yields empty", func(t *testing.T) {
		got := extractVia(t, func(r *http.Request) {
			r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		})
		assert.Equal(t, "", got)
	})

	t.Run("No credentials yields empty", func(t *testing.T) {
		got := extractVia(t, func(r *http.Request) {})
		assert.Equal(t, "", got)
	})
}
