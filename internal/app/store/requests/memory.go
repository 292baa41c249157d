// internal/app/store/requests/memory.go
package requeststore

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Memory is the in-process help request store. Mutations are serialized
// behind one mutex and always run to completion; callers receive
// copies, never references into the table.
type Memory struct {
	mu      sync.Mutex
	byID    map[string]models.HelpRequest
	order   []string
	latency time.Duration
}

// NewMemory creates an empty in-memory request store. A non-zero
// latency is slept before every operation to mimic a remote backend.
func NewMemory(latency time.Duration) *Memory {
	return &Memory{
		byID:    make(map[string]models.HelpRequest),
		latency: latency,
	}
}

func (m *Memory) delay() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}

// List returns all help requests in insertion order.
func (m *Memory) List(_ context.Context) ([]models.HelpRequest, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.HelpRequest, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out, nil
}

// GetByID returns the request with the given id.
func (m *Memory) GetByID(_ context.Context, id string) (models.HelpRequest, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return models.HelpRequest{}, faults.NotFound("request", id)
	}
	return r, nil
}

// Create inserts a new request with status open, assigning the id and
// timestamps.
func (m *Memory) Create(_ context.Context, r models.HelpRequest) (models.HelpRequest, error) {
	m.delay()
	if err := validate(r); err != nil {
		return models.HelpRequest{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.TitleCI = text.Fold(r.Title)
	r.Status = models.StatusOpen
	r.CreatedAt = now
	r.UpdatedAt = now
	r.ResolvedAt = nil

	m.byID[r.ID] = r
	m.order = append(m.order, r.ID)
	return r, nil
}

// Assign moves an open, unassigned request to in-progress and records
// the volunteer. The check and the update happen under one lock, so a
// second Assign against the same id observes the first and fails.
func (m *Memory) Assign(_ context.Context, id, volunteerID string) (models.HelpRequest, error) {
	m.delay()
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return models.HelpRequest{}, faults.NotFound("request", id)
	}
	if r.Status != models.StatusOpen || r.AssignedTo != "" {
		return models.HelpRequest{}, faults.Conflict("request is not open for assignment")
	}

	r.AssignedTo = volunteerID
	r.Status = models.StatusInProgress
	r.UpdatedAt = time.Now().UTC()
	m.byID[id] = r
	return r, nil
}

// Complete moves an in-progress request to resolved or closed. Resolved
// requests get a ResolvedAt stamp.
func (m *Memory) Complete(_ context.Context, id, status string) (models.HelpRequest, error) {
	m.delay()
	if !models.TerminalStatus(status) {
		return models.HelpRequest{}, faults.Validation("status", "must be resolved or closed")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return models.HelpRequest{}, faults.NotFound("request", id)
	}
	if r.Status != models.StatusInProgress {
		return models.HelpRequest{}, faults.Conflict("only in-progress requests can be completed")
	}

	now := time.Now().UTC()
	r.Status = status
	r.UpdatedAt = now
	if status == models.StatusResolved {
		r.ResolvedAt = &now
	}
	m.byID[id] = r
	return r, nil
}
