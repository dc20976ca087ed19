package user

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-up", h.SignUp)
	app.Post("/api/v1/sign-in", h.SignIn)
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c *fiber.Ctx) error {
	payload := new(credentialsPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	token, u, err := h.service.Register(c.UserContext(), email, payload.Password)
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to register"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": u.ID, "email": u.Email, "role": u.Role},
	})
}

func (h *Handler) SignIn(c *fiber.Ctx) error {
	payload := new(credentialsPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, u, err := h.service.Login(c.UserContext(), strings.TrimSpace(payload.Email), payload.Password)
	if err != nil {
		if err == ErrInvalidCredentials {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to sign in"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": u.ID, "email": u.Email, "role": u.Role},
	})
}
