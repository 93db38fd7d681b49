package handlers

import "github.com/gofiber/fiber/v2"

// Root returns the service banner.
func Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Joia Karaoke API", "status": "running"})
}

// Health is the liveness probe.
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}
