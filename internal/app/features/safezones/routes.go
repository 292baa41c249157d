// internal/app/features/safezones/routes.go
package safezones

import (
	"github.com/go-chi/chi/v5"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
)

// Routes returns a subrouter for the safe zone endpoints. Mounted under
// /safezones. Reads are open to any signed-in role; mutations are gated
// to ngo in the domain service.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Post("/{id}/occupancy", h.ServeUpdateOccupancy)

	return r
}
