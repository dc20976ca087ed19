package wishlist

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shoplite-be/internal/middleware"
)

type Handler struct {
	ledgers *Ledgers
	inboxes *Inboxes
}

func NewHandler(ledgers *Ledgers, inboxes *Inboxes) *Handler {
	return &Handler{ledgers: ledgers, inboxes: inboxes}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.List)
	app.Post("/api/v1/wishlist/:productId/toggle", h.Toggle)
	app.Get("/api/v1/notifications", h.Notifications)
	app.Post("/api/v1/notifications/read-all", h.MarkAllRead)
}

func (h *Handler) Toggle(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	productID := c.Params("productId")
	if productID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "product id is required"})
	}

	inWishlist := h.ledgers.ForUser(userID).Toggle(productID)
	return c.JSON(fiber.Map{
		"product_id":  productID,
		"in_wishlist": inWishlist,
	})
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	items := h.ledgers.ForUser(userID).Items()
	return c.JSON(fiber.Map{"items": items, "count": len(items)})
}

func (h *Handler) Notifications(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	inbox := h.inboxes.ForUser(userID)
	return c.JSON(fiber.Map{
		"notifications": inbox.All(),
		"unread_count":  inbox.UnreadCount(),
	})
}

func (h *Handler) MarkAllRead(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	inbox := h.inboxes.ForUser(userID)
	inbox.MarkAllRead()
	return c.JSON(fiber.Map{"unread_count": inbox.UnreadCount()})
}
