// Package session keeps logged-in identities server-side in Redis, keyed by
// the opaque token handed to the browser as a cookie.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

// Principal is the identity carried by a live session. It deliberately holds
// no password hash; only what the views and ownership checks need.
type Principal struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Manager struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewManager(client *redisv9.Client, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{client: client, ttl: ttl}
}

// Establish stores the principal and returns the opaque token for the cookie.
func (m *Manager) Establish(ctx context.Context, principal Principal) (string, error) {
	payload, err := json.Marshal(principal)
	if err != nil {
		return "", fmt.Errorf("marshal session principal failed: %w", err)
	}

	token := uuid.NewString()
	if err := m.client.Set(ctx, m.key(token), payload, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session failed: %w", err)
	}
	return token, nil
}

// Resolve returns the principal for a token, or nil when the token is unknown
// or expired. A hit slides the expiry forward by the full TTL.
func (m *Manager) Resolve(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := m.client.Get(ctx, m.key(token)).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session failed: %w", err)
	}

	var principal Principal
	if err := json.Unmarshal([]byte(raw), &principal); err != nil {
		return nil, fmt.Errorf("unmarshal session principal failed: %w", err)
	}

	if err := m.client.Expire(ctx, m.key(token), m.ttl).Err(); err != nil {
		return nil, fmt.Errorf("redis refresh session ttl failed: %w", err)
	}
	return &principal, nil
}

// Terminate invalidates a token. Unknown tokens are a no-op; a store failure
// is surfaced so logout does not pretend to have succeeded.
func (m *Manager) Terminate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.client.Del(ctx, m.key(token)).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

func (m *Manager) key(token string) string {
	return fmt.Sprintf("session:%s", token)
}
