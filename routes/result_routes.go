package routes

import (
	"github.com/anjiri1684/gradebook/handlers"
	"github.com/gofiber/fiber/v2"
)

func ResultRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	api.Post("/results", h.SubmitResult)
	api.Get("/stats", h.Digest)
}
