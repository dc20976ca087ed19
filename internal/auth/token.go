package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ExtractAccessToken pulls the access token off a request, preferring the
// cookie the web client sets over the Authorization header.
func ExtractAccessToken(c *fiber.Ctx) string {
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
