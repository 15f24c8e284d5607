package handlers

import (
	"fmt"

	"github.com/anjiri1684/gradebook/models"
	"github.com/anjiri1684/gradebook/websocket"
	"github.com/gofiber/fiber/v2"
)

type StudentRequest struct {
	ID         *int   `json:"id" validate:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TestsTaken []int  `json:"tests_taken"`
}

func (h *Handler) CreateStudent(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	student, err := h.Store.CreateStudent(models.Student{
		ID:         *req.ID,
		Name:       req.Name,
		Email:      req.Email,
		TestsTaken: req.TestsTaken,
	})
	if err != nil {
		return respondError(c, err)
	}

	h.Metrics.StudentsCreated.Inc()
	h.Hub.Publish(websocket.EventStudentCreated, student)
	return c.Status(fiber.StatusCreated).JSON(student)
}

func (h *Handler) ListStudents(c *fiber.Ctx) error {
	return c.JSON(h.Store.ListStudents())
}

func (h *Handler) GetStudent(c *fiber.Ctx) error {
	id, ok := paramID(c, "studentId")
	if !ok {
		return badRequest(c, "Invalid student id")
	}
	student, err := h.Store.GetStudent(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(student)
}

func (h *Handler) DeleteStudent(c *fiber.Ctx) error {
	id, ok := paramID(c, "studentId")
	if !ok {
		return badRequest(c, "Invalid student id")
	}
	removed, err := h.Store.DeleteStudent(id)
	if err != nil {
		return respondError(c, err)
	}

	h.Metrics.ResultsPurged.Add(float64(removed))
	h.Hub.Publish(websocket.EventStudentDeleted, fiber.Map{"student_id": id, "results_removed": removed})
	return c.JSON(fiber.Map{
		"message":         fmt.Sprintf("Student %d deleted successfully", id),
		"results_removed": removed,
	})
}

func (h *Handler) ListStudentResults(c *fiber.Ctx) error {
	id, ok := paramID(c, "studentId")
	if !ok {
		return badRequest(c, "Invalid student id")
	}
	results, err := h.Store.ResultsByStudent(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}

func (h *Handler) StudentSummary(c *fiber.Ctx) error {
	id, ok := paramID(c, "studentId")
	if !ok {
		return badRequest(c, "Invalid student id")
	}
	summary, err := h.Stats.StudentSummary(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
