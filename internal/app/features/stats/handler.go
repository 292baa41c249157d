// internal/app/features/stats/handler.go
package stats

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/app/system/timeouts"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
)

// Handler serves the dashboard statistics endpoints.
type Handler struct {
	Svc *service.Service
	Log *zap.Logger
}

// NewHandler constructs the stats Handler.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

// ServeOverview handles GET /stats/overview. NGO only.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st, err := h.Svc.Overview(ctx, service.Actor{ID: su.ID, Role: su.Role})
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, st)
}

// ServeMe handles GET /stats/me and returns the caller's own numbers.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	st, err := h.Svc.Stats(ctx, service.Actor{ID: su.ID, Role: su.Role})
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, st)
}
