package middleware

import "github.com/gofiber/fiber/v2"

// Noop passes the request through untouched. It stands in for optional middleware
// that is switched off.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
