package middleware

import (
	"strconv"
	"time"

	"github.com/anjiri1684/gradebook/metrics"
	"github.com/gofiber/fiber/v2"
)

// Instrument counts requests and records their latency, labelled by the
// matched route pattern rather than the raw path.
func Instrument(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
