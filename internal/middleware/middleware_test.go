package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite-be/internal/user"
)

func authApp() *fiber.App {
	app := fiber.New()
	app.Use(Auth())

	app.Get("/open", func(c *fiber.Ctx) error {
		if userID, ok := UserIDFromCtx(c); ok {
			return c.JSON(fiber.Map{"user_id": userID})
		}
		return c.JSON(fiber.Map{"anonymous": true})
	})
	app.Get("/me", RequireAuth(), func(c *fiber.Ctx) error {
		userID, _ := UserIDFromCtx(c)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	app.Get("/admin", RequireAuth(), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	return app
}

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := authApp()

	t.Run("Missing token passes through as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/open", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Invalid token is treated as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid token reaches protected route", func(t *testing.T) {
		token, err := user.GenerateJWT(7, user.RoleUser, "asha@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Plain user cannot reach admin route", func(t *testing.T) {
		token, err := user.GenerateJWT(7, user.RoleUser, "asha@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Admin role passes the guard", func(t *testing.T) {
		token, err := user.GenerateJWT(8, user.RoleAdmin, "ops@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestRateLimit(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit())
	app.Post("/api/v1/sign-in", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	// The strict tier allows a burst of 5, the sixth hit must bounce.
	var last int
	for i := 0; i < 6; i++ {
		req := httptest.NewRequest("POST", "/api/v1/sign-in", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		last = resp.StatusCode
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
