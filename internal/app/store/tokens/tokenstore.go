// internal/app/store/tokens/tokenstore.go
package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

// Token is a bearer credential tied to a user. Tokens live for the
// process lifetime at most; the client keeps only the opaque value.
type Token struct {
	Value     string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Store issues, resolves, and revokes bearer tokens.
type Store interface {
	Issue(ctx context.Context, userID string, ttl time.Duration) (Token, error)
	Lookup(ctx context.Context, value string) (Token, error)
	Revoke(ctx context.Context, value string) error
}

// Memory is the in-process token store.
type Memory struct {
	mu     sync.Mutex
	tokens map[string]Token
}

// NewMemory creates an empty in-memory token store.
func NewMemory() *Memory {
	return &Memory{tokens: make(map[string]Token)}
}

// Issue creates a new token for the user. A non-positive ttl means the
// token never expires (until revoked or the process exits).
func (m *Memory) Issue(_ context.Context, userID string, ttl time.Duration) (Token, error) {
	now := time.Now().UTC()
	t := Token{
		Value:    uuid.NewString(),
		UserID:   userID,
		IssuedAt: now,
	}
	if ttl > 0 {
		t.ExpiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	m.tokens[t.Value] = t
	m.mu.Unlock()
	return t, nil
}

// Lookup resolves a token value. Expired tokens are removed and
// reported as an authentication failure.
func (m *Memory) Lookup(_ context.Context, value string) (Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tokens[value]
	if !ok {
		return Token{}, faults.Authentication("unknown token")
	}
	if !t.ExpiresAt.IsZero() && time.Now().UTC().After(t.ExpiresAt) {
		delete(m.tokens, value)
		return Token{}, faults.Authentication("token expired")
	}
	return t, nil
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (m *Memory) Revoke(_ context.Context, value string) error {
	m.mu.Lock()
	delete(m.tokens, value)
	m.mu.Unlock()
	return nil
}
