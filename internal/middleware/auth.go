package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"shoplite-be/internal/auth"
	"shoplite-be/internal/user"
)

const (
	userIDLocal = "user_id"
	roleLocal   = "role"
)

// Auth parses a Bearer token when present and stashes the identity in the
// request locals. It never rejects on its own, route guards do that.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := auth.ExtractAccessToken(c)
		if tokenStr == "" {
			return c.Next()
		}

		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			return c.Next()
		}

		c.Locals(userIDLocal, claims.UserID)
		c.Locals(roleLocal, claims.Role)
		return c.Next()
	}
}

// RequireAuth rejects requests that carry no valid identity.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserIDFromCtx(c); !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}

// RequireAdmin rejects anyone without the ADMIN role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}

func UserIDFromCtx(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(userIDLocal).(uint)
	return userID, ok
}

func IsAdmin(c *fiber.Ctx) bool {
	role, ok := c.Locals(roleLocal).(string)
	return ok && role == string(user.RoleAdmin)
}
