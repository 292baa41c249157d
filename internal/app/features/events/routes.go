// internal/app/features/events/routes.go
package events

import (
	"github.com/go-chi/chi/v5"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
)

// Routes returns a subrouter for the event stream. Mounted under /events.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/ws", h.ServeWS)
	})

	return r
}
