package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"fleet-dashboard-service/internal/auth/core/domain"
	"fleet-dashboard-service/internal/auth/core/ports"
)

// Client is the subset of *goredis.Client used by the store.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

const keyPrefix = "session"

type SessionStore struct {
	client   Client
	ttl      map[domain.Scope]time.Duration
	newToken func() string
	now      func() time.Time
}

func NewSessionStore(client Client, persistentTTL, sessionTTL time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl: map[domain.Scope]time.Duration{
			domain.ScopePersistent: persistentTTL,
			domain.ScopeSession:    sessionTTL,
		},
		newToken: uuid.NewString,
		now:      time.Now,
	}
}

var _ ports.SessionStorePort = (*SessionStore)(nil)

type storedSession struct {
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func sessionKey(scope domain.Scope, token string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, scope, token)
}

func (s *SessionStore) Save(ctx context.Context, scope domain.Scope, user domain.User) (*domain.Session, error) {
	ttl, ok := s.ttl[scope]
	if !ok {
		return nil, fmt.Errorf("unknown session scope %q", scope)
	}

	token := s.newToken()
	expiresAt := s.now().Add(ttl).UTC()

	payload, err := json.Marshal(storedSession{User: user, ExpiresAt: expiresAt})
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, sessionKey(scope, token), payload, ttl).Err(); err != nil {
		return nil, err
	}

	return &domain.Session{Token: token, Scope: scope, User: user, ExpiresAt: expiresAt}, nil
}

func (s *SessionStore) Lookup(ctx context.Context, token string) (*domain.Session, error) {
	for _, scope := range domain.LookupOrder {
		raw, err := s.client.Get(ctx, sessionKey(scope, token)).Bytes()
		if errors.Is(err, goredis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}

		var stored storedSession
		if err := json.Unmarshal(raw, &stored); err != nil {
			// unreadable payload, treat as absent in this scope
			continue
		}
		return &domain.Session{
			Token:     token,
			Scope:     scope,
			User:      stored.User,
			ExpiresAt: stored.ExpiresAt,
		}, nil
	}
	return nil, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	keys := make([]string, 0, len(domain.LookupOrder))
	for _, scope := range domain.LookupOrder {
		keys = append(keys, sessionKey(scope, token))
	}
	return s.client.Del(ctx, keys...).Err()
}
