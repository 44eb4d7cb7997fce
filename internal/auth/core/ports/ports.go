package ports

import (
	"context"

	"fleet-dashboard-service/internal/auth/core/domain"
)

type UserRepositoryPort interface {
	// FindByCredentials:
	//   user != nil, err = nil -> match
	//   user = nil,  err = nil -> no match
	//   err != nil             -> backend error
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
}

type SessionStorePort interface {
	Save(ctx context.Context, scope domain.Scope, user domain.User) (*domain.Session, error)
	// Lookup returns nil, nil when the token is unknown in every scope.
	Lookup(ctx context.Context, token string) (*domain.Session, error)
	// Delete removes the token from every scope.
	Delete(ctx context.Context, token string) error
}
