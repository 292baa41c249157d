// internal/app/features/alerts/handler.go
package alerts

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/app/system/htmlsanitize"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

// Handler broadcasts emergency alerts to all connected dashboards.
type Handler struct {
	Hub *notify.Hub
	Log *zap.Logger
}

// NewHandler constructs the alerts Handler.
func NewHandler(hub *notify.Hub, logger *zap.Logger) *Handler {
	return &Handler{Hub: hub, Log: logger}
}

type alertRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity,omitempty"`
}

// Alert is the payload broadcast on the hub.
type Alert struct {
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	IssuedBy string    `json:"issuedBy"`
	IssuedAt time.Time `json:"issuedAt"`
}

// ServeBroadcast handles POST /alerts. NGO only (enforced by routing).
func (h *Handler) ServeBroadcast(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in alertRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	alert := Alert{
		Title:    htmlsanitize.Clean(in.Title),
		Message:  htmlsanitize.Clean(in.Message),
		Severity: strings.ToLower(strings.TrimSpace(in.Severity)),
		IssuedBy: su.ID,
		IssuedAt: time.Now().UTC(),
	}
	if alert.Title == "" {
		webjson.Error(w, h.Log, faults.Validation("title", "is required"))
		return
	}
	if alert.Message == "" {
		webjson.Error(w, h.Log, faults.Validation("message", "is required"))
		return
	}
	if alert.Severity == "" {
		alert.Severity = "warning"
	}

	h.Hub.Publish(notify.KindEmergencyAlert, alert)
	h.Log.Warn("emergency alert broadcast",
		zap.String("title", alert.Title),
		zap.String("issued_by", su.ID))
	webjson.Write(w, http.StatusAccepted, alert)
}
