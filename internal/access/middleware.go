package access

import (
	"github.com/gofiber/fiber/v2"

	"newtab/internal/api"
)

// Middleware rejects API requests whose cookie does not carry a valid access key.
func Middleware(g *Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(g.cookieName)
		if raw == "" {
			return api.UnauthorizedError("Missing access key")
		}
		if !g.cachedKeyValid(c, raw) {
			return api.UnauthorizedError("Invalid access key")
		}
		return c.Next()
	}
}
