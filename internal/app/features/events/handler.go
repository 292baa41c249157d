// internal/app/features/events/handler.go
package events

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Handler streams hub events to dashboard clients over a websocket.
type Handler struct {
	Hub      *notify.Hub
	Cache    *service.Cache
	Upgrader websocket.Upgrader
	Log      *zap.Logger
}

// NewHandler constructs the events Handler. The upgrader accepts any
// origin; the dashboard is served from a separate host in development.
func NewHandler(hub *notify.Hub, cache *service.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		Hub:   hub,
		Cache: cache,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		Log: logger,
	}
}

// snapshot is sent once after the upgrade so a reconnecting client can
// catch up before live events arrive.
type snapshot struct {
	Kind      string `json:"kind"`
	Resources any    `json:"resources"`
	Requests  any    `json:"requests"`
}

// ServeWS handles GET /events/ws.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	events, cancel := h.Hub.Subscribe()
	defer cancel()
	defer conn.Close()

	h.Log.Info("event stream connected",
		zap.String("user_id", su.ID),
		zap.String("role", su.Role))

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(snapshot{
		Kind:      "snapshot",
		Resources: h.Cache.Resources(),
		Requests:  h.Cache.Requests(),
	}); err != nil {
		return
	}

	// Read pump: discard client frames, notice disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case ev, open := <-events:
			if !open {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
