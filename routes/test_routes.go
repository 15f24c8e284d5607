package routes

import (
	"github.com/anjiri1684/gradebook/handlers"
	"github.com/gofiber/fiber/v2"
)

func TestRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	tests := api.Group("/tests")
	tests.Post("", h.CreateTest)
	tests.Get("", h.ListTests)
	tests.Get("/:testId", h.GetTest)
	tests.Get("/:testId/results", h.ListTestResults)
	tests.Get("/:testId/average", h.AverageScore)
	tests.Get("/:testId/highest", h.HighestScore)
}
