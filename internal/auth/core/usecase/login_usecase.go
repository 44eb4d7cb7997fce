package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fleet-dashboard-service/internal/auth/core/domain"
	"fleet-dashboard-service/internal/auth/core/ports"
)

var (
	ErrInvalidLoginInput  = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthBackend        = errors.New("could not validate your credentials right now, try again")
)

type LoginInput struct {
	Email    string
	Password string
	Remember bool
	// PreviousToken is the caller's current session token, if any. It is
	// revoked once the new session is stored.
	PreviousToken string
}

type LoginUseCase struct {
	users    ports.UserRepositoryPort
	sessions ports.SessionStorePort
	log      *zap.Logger
}

func NewLoginUseCase(users ports.UserRepositoryPort, sessions ports.SessionStorePort, log *zap.Logger) *LoginUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoginUseCase{users: users, sessions: sessions, log: log}
}

func (uc *LoginUseCase) Execute(ctx context.Context, in LoginInput) (*domain.Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrInvalidLoginInput
	}

	user, err := uc.users.FindByCredentials(ctx, email, in.Password)
	if err != nil {
		uc.log.Error("failed to query users table", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthBackend, err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	session, err := uc.sessions.Save(ctx, domain.ScopeFor(in.Remember), *user)
	if err != nil {
		uc.log.Error("failed to store session", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrAuthBackend, err)
	}

	if in.PreviousToken != "" && in.PreviousToken != session.Token {
		if err := uc.sessions.Delete(ctx, in.PreviousToken); err != nil {
			uc.log.Warn("failed to revoke previous session", zap.Error(err))
		}
	}

	uc.log.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("scope", string(session.Scope)),
	)
	return session, nil
}
