package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rajas/models"
	"rajas/store"
)

// CreateOrder stores a checkout and queues the admin notification.
// The notification never delays or fails the response.
func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	var input models.OrderCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := h.orders.Create(c.Context(), input.Order())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Insert failed"})
	}

	h.mail.EnqueueOrder(*order)

	return c.JSON(order)
}

func (h *Handler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Query failed"})
	}

	return c.JSON(orders)
}

func (h *Handler) DeleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	if err := h.orders.Delete(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Delete failed"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Order deleted"})
}

// UpdateOrderStatus overwrites the status field only. Any string is
// accepted; the admin panel happens to use pending/completed/cancelled.
func (h *Handler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var input models.OrderStatusUpdate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := h.orders.UpdateStatus(c.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Update failed"})
	}

	return c.JSON(order)
}
