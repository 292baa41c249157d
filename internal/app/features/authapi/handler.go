// internal/app/features/authapi/handler.go
package authapi

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
	"github.com/reliefworks/reliefhub/internal/app/system/authutil"
	"github.com/reliefworks/reliefhub/internal/app/system/timeouts"
	"github.com/reliefworks/reliefhub/internal/app/system/webjson"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Handler serves login, registration, and logout.
type Handler struct {
	Users      userstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs the auth Handler.
func NewHandler(users userstore.Store, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sm,
		Log:        logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
}

// sessionResponse is returned by login and register.
type sessionResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// ServeLogin handles POST /auth/login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		webjson.Error(w, h.Log, faults.Authentication("invalid credentials"))
		return
	}
	if err := authutil.CheckPassword(u.PasswordHash, in.Password); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	token, err := h.SessionMgr.SignIn(w, r, u)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user signed in",
		zap.String("user_id", u.ID),
		zap.String("role", u.Role))
	webjson.Write(w, http.StatusOK, sessionResponse{User: u, Token: token})
}

// ServeRegister handles POST /auth/register. NGO accounts must name
// their organization; new accounts start unverified.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := webjson.Decode(r, &in); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		Email:        strings.TrimSpace(in.Email),
		Name:         strings.TrimSpace(in.Name),
		Role:         strings.ToLower(strings.TrimSpace(in.Role)),
		Phone:        strings.TrimSpace(in.Phone),
		Organization: strings.TrimSpace(in.Organization),
		PasswordHash: hash,
	})
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	token, err := h.SessionMgr.SignIn(w, r, u)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user registered",
		zap.String("user_id", u.ID),
		zap.String("role", u.Role))
	webjson.Write(w, http.StatusCreated, sessionResponse{User: u, Token: token})
}

// ServeLogout handles POST /auth/logout. The bearer token is revoked
// and the cookie session cleared; later calls with either fail 401.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ServeMe handles GET /auth/me and returns the signed-in user.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.CurrentUser(r)
	if !ok {
		webjson.Error(w, h.Log, faults.Authentication("sign in required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, su.ID)
	if err != nil {
		webjson.Error(w, h.Log, err)
		return
	}
	webjson.Write(w, http.StatusOK, u)
}
