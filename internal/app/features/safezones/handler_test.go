package safezones_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/features/safezones"
	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/domain/models"
	"github.com/reliefworks/reliefhub/internal/testutil"
)

func setup(t *testing.T) (http.Handler, *service.Service) {
	t.Helper()
	svc := testutil.NewService(t)
	h := safezones.NewHandler(svc, zap.NewNop())
	return safezones.Routes(h), svc
}

const createBody = `{
	"name": "Central Evacuation Site",
	"type": "evacuation",
	"capacity": 200,
	"location": {"latitude": 40.75, "longitude": -73.98, "address": "Times Square"},
	"contact": {"name": "Site Manager", "phone": "+1222333444"}
}`

func TestCreate_NGO(t *testing.T) {
	router, svc := setup(t)
	ngo := testutil.AddUser(t, svc, "ngo@relief.org", models.RoleNGO)

	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody)),
		testutil.SessionUserFor(ngo))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}
	var created models.SafeZone
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Status != models.ZoneActive {
		t.Errorf("status: got %q, want active", created.Status)
	}
	if created.ManagedBy != ngo.ID {
		t.Errorf("managedBy: got %q, want %q", created.ManagedBy, ngo.ID)
	}
}

func TestCreate_VolunteerForbidden(t *testing.T) {
	router, svc := setup(t)
	volunteer := testutil.AddUser(t, svc, "volunteer@helper.com", models.RoleVolunteer)

	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody)),
		testutil.SessionUserFor(volunteer))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want 403", rec.Code)
	}
}

func TestOccupancyLifecycle(t *testing.T) {
	router, svc := setup(t)
	ngo := testutil.AddUser(t, svc, "ngo@relief.org", models.RoleNGO)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.WithUser(
		httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody)),
		testutil.SessionUserFor(ngo)))
	var created models.SafeZone
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.WithUser(
		httptest.NewRequest(http.MethodPost, "/"+created.ID+"/occupancy", strings.NewReader(`{"currentOccupancy":200}`)),
		testutil.SessionUserFor(ngo)))
	if rec.Code != http.StatusOK {
		t.Fatalf("occupancy: got %d; body %s", rec.Code, rec.Body.String())
	}
	var updated models.SafeZone
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Status != models.ZoneFull {
		t.Errorf("status at capacity: got %q, want full", updated.Status)
	}

	// Any signed-in role can read.
	victim := testutil.AddUser(t, svc, "victim@help.com", models.RoleVictim)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.WithUser(
		httptest.NewRequest(http.MethodGet, "/", nil), testutil.SessionUserFor(victim)))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got %d", rec.Code)
	}
	var zones []models.SafeZone
	if err := json.Unmarshal(rec.Body.Bytes(), &zones); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(zones) != 1 {
		t.Errorf("list: got %d zones, want 1", len(zones))
	}
}
