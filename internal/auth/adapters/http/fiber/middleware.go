package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fleet-dashboard-service/internal/auth/core/domain"
	"fleet-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const sessionLocalsKey = "auth.session"

type SessionUseCase interface {
	Current(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
}

// RequireSession rejects requests that carry no valid session token, either
// as cookie or as bearer token.
func RequireSession(sessions SessionUseCase, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := requestToken(c, cookieName)

		s, err := sessions.Current(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrSessionNotFound) {
				return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
					Error:   "unauthenticated",
					Message: "login required",
				})
			}
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error:   "auth_unavailable",
				Message: usecase.ErrAuthBackend.Error(),
			})
		}

		c.Locals(sessionLocalsKey, s)
		return c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c *fiber.Ctx) *domain.Session {
	s, _ := c.Locals(sessionLocalsKey).(*domain.Session)
	return s
}

func requestToken(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if rest, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(rest)
	}
	return ""
}
