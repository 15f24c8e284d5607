package routes

import (
	"github.com/anjiri1684/gradebook/handlers"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func FeedRoutes(app *fiber.App, h *handlers.Handler) {
	ws := app.Group("/ws")

	ws.Use(func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	ws.Get("/feed", websocket.New(h.ServeFeed))
}
