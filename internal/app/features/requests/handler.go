// internal/app/features/requests/handler.go
package requests

import (
	"context"
	"net/http"

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

// Handler serves the help request endpoints.
type Handler struct {
	Svc *service.Service
	Hub *notify.Hub
	Log *zap.Logger
}

// NewHandler constructs the requests Handler.
func NewHandler(svc *service.Service, hub *notify.Hub, logger *zap.Logger) *Handler {
	return &Handler{Svc: svc, Hub: hub, Log: logger}
}

type createRequestRequest struct {
	Title          string             `json:"title"`
	Type           string             `json:"type"`
	Description    string             `json:"description"`
	Urgency        string             `json:"urgency"`
	PeopleAffected int                `json:"peopleAffected"`
	Location       models.Location    `json:"location"`
	ContactInfo    models.ContactInfo `json:"contactInfo"`
}

type assignRequest struct {
	VolunteerID string `json:"volunteerId,omitempty"`
}

// ServeList handles GET /requests with optional search, type, status,
// and urgency query parameters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := h.Svc.Requests.List(ctx)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	q := r.URL.Query()
	filtered := service.FilterRequests(all, service.RequestFilter{
		Search:  q.Get("search"),
		Type:    q.Get("type"),
		Status:  q.Get("status"),
		Urgency: q.Get("urgency"),
	})
	webjson.Write(w, http.StatusOK, filtered)
}

// ServeGet handles GET /requests/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	req, err := h.Svc.Requests.GetByID(ctx, chi.URLParam(r, "id"))
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, req)
}

// ServeCreate handles POST /requests. Victim and ngo only.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in createRequestRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Svc.CreateRequest(ctx, service.Actor{ID: su.ID, Role: su.Role}, models.HelpRequest{
		Title:          in.Title,
		Type:           in.Type,
		Description:    in.Description,
		Urgency:        in.Urgency,
		PeopleAffected: in.PeopleAffected,
		Location:       in.Location,
		ContactInfo:    in.ContactInfo,
	})
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Hub.Publish(notify.KindRequestAdded, created)
	h.Log.Info("help request created",
		zap.String("request_id", created.ID),
		zap.String("urgency", created.Urgency),
		zap.String("requested_by", su.ID))
	webjson.Write(w, http.StatusCreated, created)
}

// ServeAssign handles POST /requests/{id}/assign. Volunteers only; an
// empty or missing volunteerId means the caller takes the request.
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	var in assignRequest
	if r.ContentLength != 0 {
		if err := webjson.Decode(r, &in); err != nil {
			webjson.Error(w, h.Log, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	assigned, err := h.Svc.AssignToVolunteer(ctx, service.Actor{ID: su.ID, Role: su.Role},
		chi.URLParam(r, "id"), in.VolunteerID)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Hub.Publish(notify.KindRequestAssigned, assigned)
	h.Log.Info("request assigned",
		zap.String("request_id", assigned.ID),
		zap.String("assigned_to", assigned.AssignedTo))
	webjson.Write(w, http.StatusOK, assigned)
}

// ServeResolve handles POST /requests/{id}/resolve.
func (h *Handler) ServeResolve(w http.ResponseWriter, r *http.Request) {
	h.complete(w, r, models.StatusResolved)
}

// ServeClose handles POST /requests/{id}/close.
func (h *Handler) ServeClose(w http.ResponseWriter, r *http.Request) {
	h.complete(w, r, models.StatusClosed)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request, status string) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	actor := service.Actor{ID: su.ID, Role: su.Role}
	id := chi.URLParam(r, "id")

	var (
		updated models.HelpRequest
		err     error
	)
	if status == models.StatusResolved {
		updated, err = h.Svc.ResolveRequest(ctx, actor, id)
	} else {
		updated, err = h.Svc.CloseRequest(ctx, actor, id)
	}
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Hub.Publish(notify.KindRequestUpdated, updated)
	webjson.Write(w, http.StatusOK, updated)
}
