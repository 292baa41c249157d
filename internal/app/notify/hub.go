// internal/app/notify/hub.go
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event kinds published by the feature handlers. Clients subscribed to
// the events stream receive every kind; filtering happens client-side.
const (
	KindResourceAdded   = "resource:added"
	KindResourceUpdated = "resource:updated"
	KindRequestAdded    = "request:added"
	KindRequestUpdated  = "request:updated"
	KindRequestAssigned = "request:assigned"
	KindEmergencyAlert  = "emergency:alert"
)

// Event is a broadcast notification about a mutation or alert.
type Event struct {
	Kind    string    `json:"kind"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

const subscriberBuffer = 16

// Hub fans events out to all current subscribers. Publish never blocks:
// a subscriber that cannot keep up has events dropped rather than
// stalling the publishing handler.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	closed bool
	log    *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[chan Event]struct{}),
		log:  logger,
	}
}

// Subscribe registers a new subscriber and returns its channel plus a
// cancel function. The channel is closed on cancel or hub shutdown.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
			h.mu.Unlock()
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber that has buffer room.
func (h *Hub) Publish(kind string, payload any) {
	ev := Event{Kind: kind, Payload: payload, At: time.Now().UTC()}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			if h.log != nil {
				h.log.Debug("dropping event for slow subscriber",
					zap.String("kind", kind))
			}
		}
	}
}

// Close shuts the hub down and closes all subscriber channels.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
		delete(h.subs, ch)
	}
}
