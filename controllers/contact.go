package controllers

import (
	"github.com/gofiber/fiber/v2"

	"rajas/models"
)

// SubmitContact acknowledges the message and queues the notification.
// Nothing is persisted.
func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	var input models.ContactMessage
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.mail.EnqueueContact(input)

	return c.JSON(fiber.Map{"status": "success", "message": "Thank you for contacting us!"})
}
