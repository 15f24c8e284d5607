package handlers

import (
	"github.com/anjiri1684/gradebook/models"
	"github.com/anjiri1684/gradebook/websocket"
	"github.com/gofiber/fiber/v2"
)

type TestRequest struct {
	ID       *int   `json:"id" validate:"required"`
	Name     string `json:"name"`
	MaxScore *int   `json:"max_score" validate:"required"`
}

func (h *Handler) CreateTest(c *fiber.Ctx) error {
	var req TestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	test, err := h.Store.CreateTest(models.Test{
		ID:       *req.ID,
		Name:     req.Name,
		MaxScore: *req.MaxScore,
	})
	if err != nil {
		return respondError(c, err)
	}

	h.Metrics.TestsCreated.Inc()
	h.Hub.Publish(websocket.EventTestCreated, test)
	return c.Status(fiber.StatusCreated).JSON(test)
}

func (h *Handler) ListTests(c *fiber.Ctx) error {
	return c.JSON(h.Store.ListTests())
}

func (h *Handler) GetTest(c *fiber.Ctx) error {
	id, ok := paramID(c, "testId")
	if !ok {
		return badRequest(c, "Invalid test id")
	}
	test, err := h.Store.GetTest(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(test)
}

func (h *Handler) ListTestResults(c *fiber.Ctx) error {
	id, ok := paramID(c, "testId")
	if !ok {
		return badRequest(c, "Invalid test id")
	}
	results, err := h.Store.ResultsByTest(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}
