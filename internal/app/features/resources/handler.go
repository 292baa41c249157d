// internal/app/features/resources/handler.go
package resources

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/app/system/timeouts"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Handler serves the resource endpoints.
type Handler struct {
	Svc *service.Service
	Hub *notify.Hub
	Log *zap.Logger
}

// NewHandler constructs the resources Handler.
func NewHandler(svc *service.Service, hub *notify.Hub, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Hub: hub, Log: logger}
}

type createResourceRequest struct {
	Title       string             `json:"title"`
	Type        string             `json:"type"`
	Description string             `json:"description"`
	Quantity    int                `json:"quantity"`
	Unit        string             `json:"unit"`
	Location    models.Location    `json:"location"`
	ContactInfo models.ContactInfo `json:"contactInfo"`
	Priority    string             `json:"priority,omitempty"`
	ExpiryDate  *time.Time         `json:"expiryDate,omitempty"`
}

type availabilityRequest struct {
	Availability string `json:"availability"`
}

// ServeList handles GET /resources with optional search, type, and
// availability query parameters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Svc.Resources.List(ctx)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	q := r.URL.Query()
	filtered := service.FilterResources(all, service.ResourceFilter{
		Search:       q.Get("search"),
		Type:         q.Get("type"),
		Availability: q.Get("availability"),
	})
	webjson.Write(w, http.StatusOK, filtered)
}

// ServeGet handles GET /resources/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Svc.Resources.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, res)
}

// ServeCreate handles POST /resources. NGO and volunteer only.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in createResourceRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Svc.CreateResource(ctx, service.Actor{ID: su.ID, Role: su.Role}, models.Resource{
		Title:       in.Title,
		Type:        in.Type,
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Location:    in.Location,
		ContactInfo: in.ContactInfo,
		Priority:    in.Priority,
		ExpiryDate:  in.ExpiryDate,
	})
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Hub.Publish(notify.KindResourceAdded, created)
	h.Log.Info("resource created",
		zap.String("resource_id", created.ID),
		zap.String("posted_by", su.ID))
	webjson.Write(w, http.StatusCreated, created)
}

// ServeUpdateAvailability handles POST /resources/{id}/availability.
// Only the forward steps reserve and distribute are accepted.
func (h *Handler) ServeUpdateAvailability(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in availabilityRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	updated, err := h.Svc.UpdateAvailability(ctx, service.Actor{ID: su.ID, Role: su.Role},
		chi.URLParam(r, "id"), in.Availability)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Hub.Publish(notify.KindResourceUpdated, updated)
	webjson.Write(w, http.StatusOK, updated)
}
