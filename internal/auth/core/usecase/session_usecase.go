package usecase

import (
	"context"
	"errors"
	"fmt"

	"fleet-dashboard-service/internal/auth/core/domain"
	"fleet-dashboard-service/internal/auth/core/ports"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionUseCase resolves and revokes stored sessions.
type SessionUseCase struct {
	sessions ports.SessionStorePort
}

func NewSessionUseCase(sessions ports.SessionStorePort) *SessionUseCase {
	return &SessionUseCase{sessions: sessions}
}

func (uc *SessionUseCase) Current(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	s, err := uc.sessions.Lookup(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthBackend, err)
	}
	if s == nil {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Logout is idempotent; an empty token is a no-op.
func (uc *SessionUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", ErrAuthBackend, err)
	}
	return nil
}
