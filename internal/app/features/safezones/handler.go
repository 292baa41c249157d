// internal/app/features/safezones/handler.go
package safezones

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/app/system/timeouts"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Handler serves the safe zone endpoints.
type Handler struct {
	Svc *service.Service
	Log *zap.Logger
}

// NewHandler constructs the safezones Handler.
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Log: logger}
}

type createZoneRequest struct {
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Capacity   int                `json:"capacity"`
	Location   models.Location    `json:"location"`
	Contact    models.ContactInfo `json:"contact"`
	Facilities []string           `json:"facilities,omitempty"`
}

type occupancyRequest struct {
	CurrentOccupancy int `json:"currentOccupancy"`
}

// ServeList handles GET /safezones.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	zones, err := h.Svc.SafeZones.List(ctx)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, zones)
}

// ServeCreate handles POST /safezones. NGO only.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in createZoneRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Svc.CreateSafeZone(ctx, service.Actor{ID: su.ID, Role: su.Role}, models.SafeZone{
		Name:       in.Name,
		Type:       in.Type,
		Capacity:   in.Capacity,
		Location:   in.Location,
		Contact:    in.Contact,
		Facilities: in.Facilities,
	})
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("safe zone created",
		zap.String("zone_id", created.ID),
		zap.String("managed_by", su.ID))
	webjson.Write(w, http.StatusCreated, created)
}

// ServeUpdateOccupancy handles POST /safezones/{id}/occupancy. NGO only.
func (h *Handler) ServeUpdateOccupancy(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in occupancyRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Svc.UpdateOccupancy(ctx, service.Actor{ID: su.ID, Role: su.Role},
		chi.URLParam(r, "id"), in.CurrentOccupancy)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, updated)
}
