package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rajas/models"
	"rajas/store"
)

// GetProducts lists the catalog, optionally filtered by ?category=.
// The value "all" means no filter.
func (h *Handler) GetProducts(c *fiber.Ctx) error {
	category := c.Query("category")

	products, err := h.products.List(c.Context(), category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Query failed"})
	}

	return c.JSON(products)
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	product, err := h.products.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Query failed"})
	}

	return c.JSON(product)
}

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var input models.ProductCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := h.products.Create(c.Context(), input.Product())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Insert failed"})
	}

	return c.JSON(product)
}

// UpdateProduct replaces every mutable field of an existing product.
func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	var input models.ProductCreate
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product, err := h.products.Update(c.Context(), id, input.Product())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Update failed"})
	}

	return c.JSON(product)
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if err := h.products.Delete(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Delete failed"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Product deleted"})
}

// GetCategories returns the fixed category set the storefront renders.
func (h *Handler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": []models.Category{
			{ID: "men", Name: "Men's Collection"},
			{ID: "women", Name: "Women's Collection"},
			{ID: "all", Name: "All Products"},
		},
	})
}
