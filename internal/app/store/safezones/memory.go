// internal/app/store/safezones/memory.go
package safezonestore

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Memory is the in-process safe zone store.
type Memory struct {
	mu      sync.Mutex
	byID    map[string]models.SafeZone
	order   []string
	latency time.Duration
}

// NewMemory creates an empty in-memory safe zone store.
func NewMemory(latency time.Duration) *Memory {
	return &Memory{
		byID:    make(map[string]models.SafeZone),
		latency: latency,
	}
}

func (m *Memory) delay() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

// List returns all safe zones in insertion order.
func (m *Memory) List(_ context.Context) ([]models.SafeZone, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.SafeZone, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

// GetByID returns the safe zone with the given id.
func (m *Memory) GetByID(_ context.Context, id string) (models.SafeZone, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.byID[id]
	if !ok {
		return models.SafeZone{}, faults.NotFound("safe zone", id)
	}
	return z, nil
}

// Create inserts a new safe zone, assigning the id and timestamps.
func (m *Memory) Create(_ context.Context, z models.SafeZone) (models.SafeZone, error) {
	m.delay()
	if err := validate(z); err != nil {
		return models.SafeZone{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	z.ID = uuid.NewString()
	z.NameCI = text.Fold(z.Name)
	z.Status = statusFor(z.CurrentOccupancy, z.Capacity)
	z.CreatedAt = now
	z.UpdatedAt = now

	m.byID[z.ID] = z
	m.order = append(m.order, z.ID)
	return z, nil
}

// UpdateOccupancy sets the zone's occupancy and rederives its status.
// Closed zones stay closed.
func (m *Memory) UpdateOccupancy(_ context.Context, id string, occupancy int) (models.SafeZone, error) {
	m.delay()
	if occupancy < 0 {
		return models.SafeZone{}, faults.Validation("currentOccupancy", "cannot be negative")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	z, ok := m.byID[id]
	if !ok {
		return models.SafeZone{}, faults.NotFound("safe zone", id)
	}
	if z.Status == models.ZoneClosed {
		return models.SafeZone{}, faults.Conflict("zone is closed")
	}

	z.CurrentOccupancy = occupancy
	z.Status = statusFor(occupancy, z.Capacity)
	z.UpdatedAt = time.Now().UTC()
	m.byID[id] = z
	return z, nil
}
