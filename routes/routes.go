package routes

import (
	"github.com/gofiber/fiber/v2"

	"rajas/controllers"
	"rajas/middleware"
)

func RegisterRoutes(app *fiber.App, h *controllers.Handler, jwtSecret string) {

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Raja's Collection API"})
	})

	api := app.Group("/api")

	// catalog
	api.Get("/products", h.GetProducts)
	api.Get("/products/:id", h.GetProduct)
	api.Post("/products", h.CreateProduct)
	api.Put("/products/:id", h.UpdateProduct)
	api.Delete("/products/:id", h.DeleteProduct)
	api.Get("/categories", h.GetCategories)

	// checkout
	api.Post("/orders", h.CreateOrder)
	api.Get("/orders", h.GetOrders)
	api.Delete("/orders/:id", h.DeleteOrder)
	api.Put("/orders/:id/status", h.UpdateOrderStatus)

	// contact form
	api.Post("/contact", h.SubmitContact)

	// admin
	api.Post("/admin/login", h.Login)
	api.Get("/admin/stats", middleware.JWT(jwtSecret), h.GetStats)
}
