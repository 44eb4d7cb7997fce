package fiber

import (
	"context"
	"errors"
	"net/http"

	"fleet-dashboard-service/internal/auth/core/domain"
	"fleet-dashboard-service/internal/auth/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type LoginUseCase interface {
	Execute(ctx context.Context, in usecase.LoginInput) (*domain.Session, error)
}

type CookieOptions struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	login    LoginUseCase
	sessions SessionUseCase
	cookie   CookieOptions
}

func NewAuthHandler(login LoginUseCase, sessions SessionUseCase, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{login: login, sessions: sessions, cookie: cookie}
}

// Login godoc
// @Summary Log in
// @Description Validates credentials against the users table and opens a session. remember=true keeps the session across browser restarts.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	session, err := h.login.Execute(c.UserContext(), usecase.LoginInput{
		Email:         req.Email,
		Password:      req.Password,
		Remember:      req.Remember,
		PreviousToken: c.Cookies(h.cookie.Name),
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidLoginInput):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: usecase.ErrInvalidLoginInput.Error(),
			})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "invalid_credentials",
				Message: usecase.ErrInvalidCredentials.Error(),
			})
		case errors.Is(err, usecase.ErrAuthBackend):
			return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
				Error:   "auth_unavailable",
				Message: usecase.ErrAuthBackend.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	cookie := &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    session.Token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if session.Scope == domain.ScopePersistent {
		cookie.Expires = session.ExpiresAt
	} else {
		cookie.SessionOnly = true
	}
	c.Cookie(cookie)

	return c.Status(http.StatusOK).JSON(toSessionResponse(session))
}

// Logout godoc
// @Summary Log out
// @Description Revokes the current session in every scope
// @Tags Auth
// @Success 204
// @Failure 503 {object} ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := requestToken(c, h.cookie.Name)
	if err := h.sessions.Logout(c.UserContext(), token); err != nil {
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Error:   "auth_unavailable",
			Message: usecase.ErrAuthBackend.Error(),
		})
	}
	c.ClearCookie(h.cookie.Name)
	return c.SendStatus(http.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	s := SessionFrom(c)
	if s == nil {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Error: "unauthenticated",
		})
	}
	return c.Status(http.StatusOK).JSON(toSessionResponse(s))
}

func toSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		User: UserResponse{
			ID:    s.User.ID,
			Email: s.User.Email,
			Name:  s.User.Name,
		},
		Scope:     string(s.Scope),
		ExpiresAt: s.ExpiresAt,
	}
}
