package controllers

import (
	"github.com/gofiber/fiber/v2"

	"rajas/models"
	"rajas/utils"
)

// Login checks the configured admin credentials and issues a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	if h.cfg.AdminUser == "" || h.cfg.AdminPass == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Admin login not configured"})
	}
	if input.Username != h.cfg.AdminUser || input.Password != h.cfg.AdminPass {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Incorrect username or password"})
	}

	token, err := utils.GenerateJWTToken(h.cfg.JWTSecret, input.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Token generation failed"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// GetStats backs the admin dashboard counters.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	stats, err := h.orders.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Query failed"})
	}

	return c.JSON(stats)
}
