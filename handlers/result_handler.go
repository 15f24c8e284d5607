package handlers

import (
	"errors"

	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/metrics"
	"github.com/anjiri1684/gradebook/models"
	"github.com/anjiri1684/gradebook/websocket"
	"github.com/gofiber/fiber/v2"
)

type SubmitResultRequest struct {
	StudentID *int `json:"student_id" validate:"required"`
	TestID    *int `json:"test_id" validate:"required"`
	Score     *int `json:"score" validate:"required"`
}

func (h *Handler) SubmitResult(c *fiber.Ctx) error {
	var req SubmitResultRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.Store.SubmitResult(models.Result{
		StudentID: *req.StudentID,
		TestID:    *req.TestID,
		Score:     *req.Score,
	})
	if err != nil {
		h.Metrics.ResultsRejected.WithLabelValues(rejectReason(err)).Inc()
		return respondError(c, err)
	}

	h.Metrics.ResultsSubmitted.Inc()
	h.Hub.Publish(websocket.EventResultSubmitted, result)
	return c.Status(fiber.StatusCreated).JSON(result)
}

func rejectReason(err error) string {
	var storeErr *database.Error
	if errors.As(err, &storeErr) && errors.Is(err, database.ErrNotFound) {
		if storeErr.Entity == "student" {
			return metrics.ReasonStudentNotFound
		}
		return metrics.ReasonTestNotFound
	}
	return metrics.ReasonInvalidScore
}
