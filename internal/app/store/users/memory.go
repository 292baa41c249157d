// internal/app/store/users/memory.go
package userstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Memory is the in-process user store. All mutations are serialized
// behind one mutex, so a read issued after a mutation's return always
// observes it. Operations run to completion regardless of caller
// cancellation; the optional latency simulates a network round trip.
type Memory struct {
	mu      sync.Mutex
	byID    map[string]models.User
	byEmail map[string]string // folded email -> id
	order   []string
	latency time.Duration
}

// NewMemory creates an empty in-memory user store. A non-zero latency
// is slept before every operation to mimic a remote backend.
func NewMemory(latency time.Duration) *Memory {
	return &Memory{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
		latency: latency,
	}
}

func (m *Memory) delay() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

// Create inserts a new user, assigning the id and creation timestamp.
func (m *Memory) Create(_ context.Context, u models.User) (models.User, error) {
	m.delay()
	if err := validate(u); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := foldEmail(u.Email)
	if _, exists := m.byEmail[key]; exists {
		return models.User{}, faults.Conflict("a user with this email already exists")
	}

	u.ID = uuid.NewString()
	u.EmailCI = key
	u.CreatedAt = time.Now().UTC()

	m.byID[u.ID] = u
	m.byEmail[key] = u.ID
	m.order = append(m.order, u.ID)
	return u, nil
}

// GetByID returns the user with the given id.
func (m *Memory) GetByID(_ context.Context, id string) (models.User, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return models.User{}, faults.NotFound("user", id)
	}
	return u, nil
}

// GetByEmail returns the user with the given email, case-insensitively.
func (m *Memory) GetByEmail(_ context.Context, email string) (models.User, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byEmail[foldEmail(email)]
	if !ok {
		return models.User{}, faults.NotFound("user", email)
	}
	return m.byID[id], nil
}

// List returns all users in insertion order.
func (m *Memory) List(_ context.Context) ([]models.User, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.User, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}
