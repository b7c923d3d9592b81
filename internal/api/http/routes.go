package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-collector/internal/collector"
)

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, col *collector.Collector) {
	v1 := app.Group("/api/v1")

	// Last-cycle snapshot. This is also where a reader can tell live data
	// from synthetic: the persisted points carry no provenance marker.
	v1.Get("/status", func(c *fiber.Ctx) error {
		status := col.Snapshot()

		if status.Cycles == 0 {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"state":   status.State,
				"message": "no cycle has completed yet",
			})
		}

		return c.JSON(status)
	})
}
