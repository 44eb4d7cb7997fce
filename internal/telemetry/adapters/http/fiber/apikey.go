package fiber

import (
	"crypto/subtle"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const HeaderAPIKey = "X-API-Key"

// RequireAPIKey guards ingestion routes. An empty key disables the check.
func RequireAPIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		got := c.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "invalid_api_key",
				Message: "missing or invalid " + HeaderAPIKey + " header",
			})
		}
		return c.Next()
	}
}
