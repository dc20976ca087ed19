package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shoplite-be/internal/address"
	"shoplite-be/internal/cart"
	"shoplite-be/internal/middleware"
	"shoplite-be/internal/utils"
)

type Handler struct {
	service Service
	carts   *cart.Manager
}

func NewHandler(service Service, carts *cart.Manager) *Handler {
	return &Handler{service: service, carts: carts}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/order/:id", h.getOrder)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/orders", h.listAllOrders)
	app.Patch("/api/v1/admin/order/:id/status", h.updateStatus)
}

type checkoutRequest struct {
	DeliveryOption string         `json:"deliveryOption"`
	Shipping       address.Fields `json:"shipping"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orderID, err := h.service.PlaceOrder(
		c.UserContext(),
		userID,
		h.carts.ForUser(userID),
		cart.DeliveryOption(payload.DeliveryOption),
		payload.Shipping,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart),
			errors.Is(err, ErrInvalidAddress),
			errors.Is(err, cart.ErrInvalidDeliveryOption):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order placed successfully",
		"order_id": orderID,
	})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	filter := Filter{UserID: &userID}
	if raw := c.Query("status"); raw != "" {
		status := Status(raw)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order status"})
		}
		filter.Status = &status
	}
	if n := c.QueryInt("limit", 0); n > 0 {
		l := uint16(n)
		filter.Limit = &l
	}

	orders, err := h.service.ListOrders(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(orderViews(orders))
}

func (h *Handler) listAllOrders(c *fiber.Ctx) error {
	var filter Filter
	if raw := c.Query("status"); raw != "" {
		status := Status(raw)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order status"})
		}
		filter.Status = &status
	}

	orders, err := h.service.ListOrders(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(orderViews(orders))
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	o, err := h.service.GetOrder(c.UserContext(), userID, middleware.IsAdmin(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case errors.Is(err, ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(orderView(o))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), Status(payload.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "status updated"})
}

// orderView adds display-formatted money next to the raw minor-unit fields.
func orderView(o *Order) fiber.Map {
	return fiber.Map{
		"order":                o,
		"subtotal_display":     utils.FormatMoney(o.Subtotal),
		"shipping_fee_display": utils.FormatMoney(o.ShippingFee),
		"total_display":        utils.FormatMoney(o.Total),
	}
}

func orderViews(orders []*Order) []fiber.Map {
	views := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		views = append(views, orderView(o))
	}
	return views
}
