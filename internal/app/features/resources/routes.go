// internal/app/features/resources/routes.go
package resources

import (
	"github.com/go-chi/chi/v5"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
)

// Routes returns a subrouter for the resource endpoints. Mounted under
// /resources. All routes require a signed-in caller; role checks for
// mutations live in the domain service.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Get("/{id}", h.ServeGet)
	r.Post("/{id}/availability", h.ServeUpdateAvailability)

	return r
}
