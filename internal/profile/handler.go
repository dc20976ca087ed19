package profile

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shoplite-be/internal/middleware"
	"shoplite-be/internal/wishlist"
)

type Handler struct {
	tracker *Tracker
	ledgers *wishlist.Ledgers
}

func NewHandler(tracker *Tracker, ledgers *wishlist.Ledgers) *Handler {
	return &Handler{tracker: tracker, ledgers: ledgers}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/profile/stats", h.Stats)
}

// Stats returns the account page numbers. The first request for a user
// kicks off their background refresh loop.
func (h *Handler) Stats(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	stats := h.tracker.Track(c.UserContext(), userID, h.ledgers.ForUser(userID))
	return c.JSON(stats.Snapshot())
}
