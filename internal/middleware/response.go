package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ResponseHeaders sets headers common to every API response. Portfolio and
// quote payloads are live account data, so API responses are marked
// uncacheable; the banner and health routes are left alone.
func ResponseHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if strings.HasPrefix(c.Path(), "/api/") {
			c.Set(fiber.HeaderCacheControl, "no-store")
		}
		return err
	}
}
