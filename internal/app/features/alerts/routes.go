// internal/app/features/alerts/routes.go
package alerts

import (
	"github.com/go-chi/chi/v5"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Routes returns a subrouter for the alert endpoints. Mounted under
// /alerts. Broadcasting is restricted to the ngo role.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole(models.RoleNGO))
		pr.Post("/", h.ServeBroadcast)
	})

	return r
}
