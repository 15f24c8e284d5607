package routes

import (
	"github.com/anjiri1684/gradebook/handlers"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	students := api.Group("/students")
	students.Post("", h.CreateStudent)
	students.Get("", h.ListStudents)
	students.Get("/:studentId", h.GetStudent)
	students.Delete("/:studentId", h.DeleteStudent)
	students.Get("/:studentId/results", h.ListStudentResults)
	students.Get("/:studentId/summary", h.StudentSummary)
}
