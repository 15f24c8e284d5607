package handlers

import (
	"errors"

	"github.com/anjiri1684/gradebook/database"
	"github.com/anjiri1684/gradebook/metrics"
	"github.com/anjiri1684/gradebook/services"
	"github.com/anjiri1684/gradebook/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EventHub receives store events after they have been committed and holds
// the feed connections they are sent to.
type EventHub interface {
	Publish(eventType string, data interface{})
	Register(c websocket.Conn)
	Unregister(c websocket.Conn)
}

var _ EventHub = (*websocket.Hub)(nil)

type Handler struct {
	Store   *database.Store
	Stats   *services.StatsService
	Metrics *metrics.Metrics
	Hub     EventHub
}

func New(store *database.Store, hub EventHub, m *metrics.Metrics) *Handler {
	return &Handler{
		Store:   store,
		Stats:   services.NewStatsService(store),
		Metrics: m,
		Hub:     hub,
	}
}

// respondError writes store errors as structured JSON. Anything else is
// handed to the app's ErrorHandler.
func respondError(c *fiber.Ctx, err error) error {
	var storeErr *database.Error
	if !errors.As(err, &storeErr) {
		return err
	}

	status, kind := fiber.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, database.ErrNotFound):
		status, kind = fiber.StatusNotFound, "not_found"
	case errors.Is(err, database.ErrDuplicateID):
		status, kind = fiber.StatusConflict, "duplicate_id"
	case errors.Is(err, database.ErrValidation):
		status, kind = fiber.StatusBadRequest, "validation"
	}

	return c.Status(status).JSON(fiber.Map{
		"error":  storeErr.Error(),
		"kind":   kind,
		"entity": storeErr.Entity,
		"id":     storeErr.ID,
	})
}

func paramID(c *fiber.Ctx, key string) (int, bool) {
	id, err := c.ParamsInt(key)
	if err != nil {
		return 0, false
	}
	return id, true
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
