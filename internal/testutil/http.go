package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// NGOUser returns a session user with the ngo role.
func NGOUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    uuid.NewString(),
		Name:  "Test Coordinator",
		Email: "ngo@test.org",
		Role:  "ngo",
	}
}

// VolunteerUser returns a session user with the volunteer role.
func VolunteerUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    uuid.NewString(),
		Name:  "Test Volunteer",
		Email: "volunteer@test.org",
		Role:  "volunteer",
	}
}

// VictimUser returns a session user with the victim role.
func VictimUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    uuid.NewString(),
		Name:  "Test Victim",
		Email: "victim@test.org",
		Role:  "victim",
	}
}

// SessionUserFor converts a stored user into the session form the
// middleware would produce.
func SessionUserFor(u models.User) *auth.SessionUser {
	return &auth.SessionUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// WithUser returns the request with the user injected into context, as
// if the session middleware had resolved them.
func WithUser(r *http.Request, u *auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, u)
}

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that call handler methods directly instead
// of going through a router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
