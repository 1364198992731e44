package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Tracing starts a server span per request when enabled.
func Tracing(enabled bool) fiber.Handler {
	if !enabled {
		return Noop()
	}
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics" || c.Path() == "/healthz"
		}),
	)
}
