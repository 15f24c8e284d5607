package handlers

import (
	websocketcontrib "github.com/gofiber/contrib/websocket"
)

// ServeFeed streams store events to the client until it disconnects.
// Incoming messages are read and discarded.
func (h *Handler) ServeFeed(c *websocketcontrib.Conn) {
	h.Hub.Register(c)
	defer h.Hub.Unregister(c)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
