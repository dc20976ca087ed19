package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoplite-be/internal/cart"
	"shoplite-be/internal/logger"
	"shoplite-be/internal/order"
	"shoplite-be/internal/product"
	"shoplite-be/internal/profile"
	"shoplite-be/internal/user"
	"shoplite-be/internal/wishlist"
)

func TestSetupApp(t *testing.T) {
	logger.Init("test")

	carts := cart.NewManager(nil)
	ledgers := wishlist.NewLedgers()

	app := setupApp(
		user.NewHandler(nil),
		product.NewHandler(nil),
		cart.NewHandler(carts),
		order.NewHandler(nil, carts),
		wishlist.NewHandler(ledgers, wishlist.NewInboxes()),
		profile.NewHandler(nil, ledgers),
	)

	t.Run("Health check is open", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Cart requires auth", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/cart", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Admin routes require auth", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/admin/orders", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown route is a plain 404", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/nope", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
