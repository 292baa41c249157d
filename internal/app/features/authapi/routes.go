// internal/app/features/authapi/routes.go
package authapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
)

// Routes returns a subrouter for the auth endpoints. Mounted under /auth.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.ServeLogin)
	r.Post("/register", h.ServeRegister)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/logout", h.ServeLogout)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
