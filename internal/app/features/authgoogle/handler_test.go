package authgoogle_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/features/authgoogle"
	tokenstore "github.com/reliefworks/reliefhub/internal/app/store/tokens"
	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/app/system/auth"
)

func newHandler(t *testing.T, clientID, clientSecret string) *authgoogle.Handler {
	t.Helper()
	users := userstore.NewMemory(0)
	sm, err := auth.NewSessionManager(auth.Options{
		SessionKey: "0123456789abcdef0123456789abcdef",
		TokenTTL:   time.Hour,
	}, tokenstore.NewMemory(), users, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return authgoogle.NewHandler(users, sm, clientID, clientSecret,
		"http://localhost:8080", zap.NewNop())
}

func TestServeLogin_NotConfigured(t *testing.T) {
	h := newHandler(t, "", "")

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "google_not_configured") {
		t.Errorf("location: got %q", loc)
	}
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	h := newHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status: got %d, want 307", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.Contains(loc, "accounts.google.com") {
		t.Errorf("location: got %q, want Google consent URL", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("location missing state parameter: %q", loc)
	}
}

func TestServeCallback_InvalidState(t *testing.T) {
	h := newHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=bogus&code=x", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "invalid_state") {
		t.Errorf("location: got %q", loc)
	}
}

func TestServeCallback_ProviderError(t *testing.T) {
	h := newHandler(t, "client-id", "client-secret")

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "google_denied") {
		t.Errorf("location: got %q", loc)
	}
}
