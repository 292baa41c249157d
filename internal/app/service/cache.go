// internal/app/service/cache.go
package service

import (
	"context"
	"sync"

	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Cache is a read-side snapshot of resources and requests fed by the
// notification hub. New websocket clients receive its contents as a
// catch-up before live events. ApplyEvent is an idempotent upsert:
// replaying an event leaves the cache unchanged.
type Cache struct {
	mu        sync.RWMutex
	resources map[string]models.Resource
	requests  map[string]models.HelpRequest
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		resources: make(map[string]models.Resource),
		requests:  make(map[string]models.HelpRequest),
	}
}

// ApplyEvent upserts the event's payload into the cache. Events whose
// payload is not a resource or request are ignored.
func (c *Cache) ApplyEvent(ev notify.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch p := ev.Payload.(type) {
	case models.Resource:
		if p.ID != "" {
			c.resources[p.ID] = p
		}
	case models.HelpRequest:
		if p.ID != "" {
			c.requests[p.ID] = p
		}
	}
}

// Run consumes hub events until the channel closes or ctx is done.
// Intended to run in its own goroutine from startup.
func (c *Cache) Run(ctx context.Context, events <-chan notify.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.ApplyEvent(ev)
		}
	}
}

// Resources returns a snapshot of the cached resources.
func (c *Cache) Resources() []models.Resource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Resource, 0, len(c.resources))
	for _, r := range c.resources {
		out = append(out, r)
	}
	return out
}

// Requests returns a snapshot of the cached requests.
func (c *Cache) Requests() []models.HelpRequest {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.HelpRequest, 0, len(c.requests))
	for _, r := range c.requests {
		out = append(out, r)
	}
	return out
}
