package handler

import "github.com/gofiber/fiber/v2"

// Health reports liveness and the active store driver.
// GET /healthz
func Health(driver string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "store": driver})
	}
}
