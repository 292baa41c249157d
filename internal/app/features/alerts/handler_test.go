package alerts_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/features/alerts"
	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/testutil"
)

func setup(t *testing.T) (http.Handler, *notify.Hub) {
	t.Helper()
	hub := notify.NewHub(zap.NewNop())
	t.Cleanup(hub.Close)
	h := alerts.NewHandler(hub, zap.NewNop())
	return alerts.Routes(h), hub
}

func TestBroadcast_NGO(t *testing.T) {
	router, hub := setup(t)

	events, cancel := hub.Subscribe()
	defer cancel()

	body := `{"title":"Flood warning","message":"River rising, evacuate zone B","severity":"critical"}`
	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)),
		testutil.NGOUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}

	select {
	case ev := <-events:
		if ev.Kind != notify.KindEmergencyAlert {
			t.Errorf("kind: got %q, want %q", ev.Kind, notify.KindEmergencyAlert)
		}
		alert, ok := ev.Payload.(alerts.Alert)
		if !ok {
			t.Fatalf("payload type: got %T", ev.Payload)
		}
		if alert.Title != "Flood warning" || alert.Severity != "critical" {
			t.Errorf("alert: got %+v", alert)
		}
	default:
		t.Fatal("expected an emergency:alert event on the hub")
	}
}

func TestBroadcast_VolunteerForbidden(t *testing.T) {
	router, _ := setup(t)

	body := `{"title":"x","message":"y"}`
	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)),
		testutil.VolunteerUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestBroadcast_MissingMessage(t *testing.T) {
	router, _ := setup(t)

	body := `{"title":"Flood warning","message":""}`
	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)),
		testutil.NGOUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rec.Code)
	}
}
