package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Health reports liveness. Unlike the API routes it returns a flat payload so
// probes don't need to unwrap the response envelope.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Inventory API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
