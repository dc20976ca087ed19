package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the catalog over HTTP. Consumer routes are public, the
// CRUD routes back the admin console.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/product/:id", h.getProduct)
}

func (h *Handler) RegisterAdminRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/product", h.createProduct)
	app.Patch("/api/v1/admin/product/:id", h.updateProduct)
	app.Delete("/api/v1/admin/product/:id", h.deleteProduct)
}

func (h *Handler) listProducts(c *fiber.Ctx) error {
	var limit *uint16
	if n := c.QueryInt("limit", 0); n > 0 {
		l := uint16(n)
		limit = &l
	}

	products, err := h.service.ListProducts(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	p, err := h.service.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(p)
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    *string  `json:"imageURL"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Available   bool     `json:"available"`
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	payload := new(createProductRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p, err := h.service.CreateProduct(c.UserContext(), CreateProductParams{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    payload.ImageURL,
		Colors:      payload.Colors,
		Sizes:       payload.Sizes,
		Available:   payload.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyName), errors.Is(err, ErrInvalidPrice):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(p)
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *int64   `json:"price"`
	ImageURL    *string  `json:"imageURL"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Available   *bool    `json:"available"`
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	payload := new(updateProductRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p, err := h.service.UpdateProduct(c.UserContext(), UpdateProductParams{
		ID:          c.Params("id"),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		ImageURL:    payload.ImageURL,
		Colors:      payload.Colors,
		Sizes:       payload.Sizes,
		Available:   payload.Available,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case errors.Is(err, ErrNoFields), errors.Is(err, ErrInvalidPrice):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(p)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "product deleted"})
}
