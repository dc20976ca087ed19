package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shoplite-be/internal/logger"
	"shoplite-be/internal/middleware"
	"shoplite-be/internal/utils"
)

type Handler struct {
	carts *Manager
}

func NewHandler(carts *Manager) *Handler {
	return &Handler{carts: carts}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addItem)
	app.Patch("/api/v1/cart/quantity", h.adjustQuantity)
	app.Delete("/api/v1/cart/item/:productID", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID string  `json:"productID"`
	Color     *string `json:"color"`
	Size      *string `json:"size"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productID is required"})
	}

	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	log := logger.FromCtx(c.UserContext()).With(
		zap.Uint("user_id", userID),
		zap.String("product_id", payload.ProductID),
	)

	line, err := h.carts.ForUser(userID).AddItem(c.UserContext(), AddItemParams{
		ProductID: payload.ProductID,
		Color:     payload.Color,
		Size:      payload.Size,
	})
	if err != nil {
		log.Warn("failed to add item to cart", zap.Error(err))
		switch {
		case errors.Is(err, ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case errors.Is(err, ErrProductUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "product is not available"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	log.Info("cart item added", zap.Int("quantity", line.Quantity))
	return c.Status(fiber.StatusOK).JSON(line)
}

type adjustQuantityRequest struct {
	ProductID string `json:"productID"`
	Delta     int    `json:"delta"`
}

func (h *Handler) adjustQuantity(c *fiber.Ctx) error {
	payload := new(adjustQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productID is required"})
	}

	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	h.carts.ForUser(userID).AdjustQuantity(payload.ProductID, payload.Delta)
	return c.JSON(fiber.Map{"message": "cart updated"})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	h.carts.ForUser(userID).RemoveItem(c.Params("productID"))
	return c.JSON(fiber.Map{"message": "item removed"})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	h.carts.ForUser(userID).Clear()
	return c.JSON(fiber.Map{"message": "cart cleared"})
}

// getCart returns the lines plus the summary for the requested delivery
// option (standard when the query parameter is omitted).
func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	option := DeliveryOption(c.Query("delivery", string(DeliveryStandard)))
	fee, err := FeeFor(option)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unrecognized delivery option"})
	}

	eng := h.carts.ForUser(userID)
	subtotal := eng.Subtotal()

	return c.JSON(fiber.Map{
		"lines":           eng.Lines(),
		"delivery_option": option,
		"subtotal":        utils.FormatMoney(subtotal),
		"shipping_fee":    utils.FormatMoney(fee),
		"total":           utils.FormatMoney(subtotal + fee),
	})
}
