package resources_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/features/resources"
	"github.com/reliefworks/reliefhub/internal/app/notify"
	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/domain/models"
	"github.com/reliefworks/reliefhub/internal/testutil"
)

func setup(t *testing.T) (http.Handler, *service.Service, *notify.Hub) {
	t.Helper()
	svc := testutil.NewService(t)
	hub := notify.NewHub(zap.NewNop())
	t.Cleanup(hub.Close)
	h := resources.NewHandler(svc, hub, zap.NewNop())
	return resources.Routes(h), svc, hub
}

const createBody = `{
	"title": "Bottled water",
	"type": "water",
	"description": "500 half-liter bottles",
	"quantity": 500,
	"unit": "bottles",
	"location": {"latitude": 40.7, "longitude": -74.0, "address": "Warehouse 12"},
	"contactInfo": {"name": "Dispatch", "phone": "+1555000222"}
}`

func TestCreateAndList(t *testing.T) {
	router, _, _ := setup(t)
	ngo := testutil.NGOUser()

	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody)), ngo)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d; body %s", rec.Code, rec.Body.String())
	}
	var created models.Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.PostedBy != ngo.ID {
		t.Errorf("postedBy: got %q, want %q", created.PostedBy, ngo.ID)
	}

	list := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/", nil), testutil.VictimUser())
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, list)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status: got %d", rec.Code)
	}
	var all []models.Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(all) != 1 || all[0].ID != created.ID {
		t.Errorf("list: got %d resources", len(all))
	}
}

func TestCreate_VictimForbidden(t *testing.T) {
	router, svc, _ := setup(t)

	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody)), testutil.VictimUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403; body %s", rec.Code, rec.Body.String())
	}

	all, err := svc.Resources.List(req.Context())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Error("denied create must not touch the store")
	}
}

func TestCreate_Unauthenticated(t *testing.T) {
	router, _, _ := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestListFilters(t *testing.T) {
	router, _, _ := setup(t)
	ngo := testutil.NGOUser()

	bodies := []string{
		createBody,
		`{
			"title": "Canned food",
			"type": "food",
			"description": "Pallet of canned goods",
			"quantity": 40,
			"unit": "boxes",
			"location": {"latitude": 40.7, "longitude": -74.0, "address": "Warehouse 12"},
			"contactInfo": {"name": "Dispatch", "phone": "+1555000222"}
		}`,
	}
	for _, b := range bodies {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(b)), ngo))
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed create: got %d; body %s", rec.Code, rec.Body.String())
		}
	}

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/?type=food", nil), ngo)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var got []models.Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Type != models.ResourceFood {
		t.Errorf("type filter: got %d results", len(got))
	}

	req = testutil.WithUser(httptest.NewRequest(http.MethodGet, "/?search=bottled", nil), ngo)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	got = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Bottled water" {
		t.Errorf("search filter: got %d results", len(got))
	}
}

func TestUpdateAvailability_PublishesEvent(t *testing.T) {
	router, _, hub := setup(t)
	ngo := testutil.NGOUser()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, testutil.WithUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(createBody)), ngo))
	var created models.Resource
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	events, cancel := hub.Subscribe()
	defer cancel()

	req := testutil.WithUser(httptest.NewRequest(http.MethodPost, "/"+created.ID+"/availability",
		strings.NewReader(`{"availability":"reserved"}`)), ngo)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}

	select {
	case ev := <-events:
		if ev.Kind != notify.KindResourceUpdated {
			t.Errorf("event kind: got %q, want %q", ev.Kind, notify.KindResourceUpdated)
		}
	default:
		t.Error("expected a resource:updated event on the hub")
	}

	// Reversing the transition is a conflict.
	req = testutil.WithUser(httptest.NewRequest(http.MethodPost, "/"+created.ID+"/availability",
		strings.NewReader(`{"availability":"available"}`)), ngo)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("reverse transition: got %d, want 409; body %s", rec.Code, rec.Body.String())
	}
}

func TestGet_NotFound(t *testing.T) {
	router, _, _ := setup(t)

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/no-such-id", nil), testutil.NGOUser())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
}
