package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"rajas/utils"
)

// JWT guards the admin routes with a bearer token.
func JWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		token := strings.TrimPrefix(auth, "Bearer ")
		user, err := utils.ParseJWTToken(secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals("admin_user", user)
		return c.Next()
	}
}
