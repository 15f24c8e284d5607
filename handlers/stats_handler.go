package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) AverageScore(c *fiber.Ctx) error {
	id, ok := paramID(c, "testId")
	if !ok {
		return badRequest(c, "Invalid test id")
	}
	avg, err := h.Stats.Average(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(avg)
}

func (h *Handler) HighestScore(c *fiber.Ctx) error {
	id, ok := paramID(c, "testId")
	if !ok {
		return badRequest(c, "Invalid test id")
	}
	hi, err := h.Stats.Highest(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(hi)
}

func (h *Handler) Digest(c *fiber.Ctx) error {
	return c.JSON(h.Stats.Digest())
}
