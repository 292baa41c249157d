// internal/app/features/stats/routes.go
package stats

import (
	"github.com/go-chi/chi/v5"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Routes returns a subrouter for the stats endpoints. Mounted under
// /stats. The aggregate overview is additionally gated to the ngo role.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/me", h.ServeMe)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole(models.RoleNGO))
		pr.Get("/overview", h.ServeOverview)
	})

	return r
}
