// internal/app/store/resources/memory.go
package resourcestore

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Memory is the in-process resource store. Mutations are serialized
// behind one mutex and always run to completion; callers receive
// copies, never references into the table.
type Memory struct {
	mu      sync.Mutex
	byID    map[string]models.Resource
	order   []string
	latency time.Duration
}

// NewMemory creates an empty in-memory resource store. A non-zero
// latency is slept before every operation to mimic a remote backend.
func NewMemory(latency time.Duration) *Memory {
	return &Memory{
		byID:    make(map[string]models.Resource),
		latency: latency,
	}
}

func (m *Memory) delay() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

// List returns all resources in insertion order.
func (m *Memory) List(_ context.Context) ([]models.Resource, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Resource, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

// GetByID returns the resource with the given id.
func (m *Memory) GetByID(_ context.Context, id string) (models.Resource, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return models.Resource{}, faults.NotFound("resource", id)
	}
	return r, nil
}

// Create inserts a new resource, assigning the id and timestamps.
func (m *Memory) Create(_ context.Context, r models.Resource) (models.Resource, error) {
	m.delay()
	if err := validate(r); err != nil {
		return models.Resource{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.TitleCI = text.Fold(r.Title)
	if r.Availability == "" {
		r.Availability = models.AvailabilityAvailable
	}
	if r.Priority == "" {
		r.Priority = models.PriorityMedium
	}
	r.PostedAt = now
	r.UpdatedAt = now

	m.byID[r.ID] = r
	m.order = append(m.order, r.ID)
	return r, nil
}

// UpdateAvailability moves a resource one step along
// available->reserved->distributed and refreshes UpdatedAt.
func (m *Memory) UpdateAvailability(_ context.Context, id, to string) (models.Resource, error) {
	m.delay()
	if !models.ValidAvailability(to) {
		return models.Resource{}, faults.Validation("availability", "is not a recognized state")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return models.Resource{}, faults.NotFound("resource", id)
	}
	if !models.NextAvailability(r.Availability, to) {
		return models.Resource{}, faults.Conflict("availability cannot move from " + r.Availability + " to " + to)
	}

	r.Availability = to
	r.UpdatedAt = time.Now().UTC()
	m.byID[id] = r
	return r, nil
}
