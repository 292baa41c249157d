package stats_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/features/stats"
	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/domain/models"
	"github.com/reliefworks/reliefhub/internal/testutil"
)

func setup(t *testing.T) (http.Handler, *service.Service) {
	t.Helper()
	svc := testutil.NewService(t)
	h := stats.NewHandler(svc, zap.NewNop())
	return stats.Routes(h), svc
}

func TestOverview_NGO(t *testing.T) {
	router, svc := setup(t)
	ngo := testutil.AddUser(t, svc, "ngo@relief.org", models.RoleNGO)
	victim := testutil.AddUser(t, svc, "victim@help.com", models.RoleVictim)
	volunteer := testutil.AddUser(t, svc, "volunteer@helper.com", models.RoleVolunteer)

	testutil.AddResource(t, svc, ngo.ID)
	open := testutil.AddRequest(t, svc, victim.ID)
	_ = open
	working := testutil.AddRequest(t, svc, victim.ID)
	if _, err := svc.Requests.Assign(httptest.NewRequest(http.MethodGet, "/", nil).Context(), working.ID, volunteer.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/overview", nil),
		testutil.SessionUserFor(ngo))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}
	var st service.OverviewStats
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.TotalResources != 1 || st.TotalRequests != 2 {
		t.Errorf("totals: got %+v", st)
	}
	if st.OpenRequests != 1 || st.InProgressRequests != 1 {
		t.Errorf("request counts: got %+v", st)
	}
	if st.ResponseRate != 50 {
		t.Errorf("responseRate: got %d, want 50", st.ResponseRate)
	}
}

func TestOverview_OtherRolesForbidden(t *testing.T) {
	router, svc := setup(t)

	for _, role := range []string{models.RoleVolunteer, models.RoleVictim} {
		u := testutil.AddUser(t, svc, role+"@test.org", role)
		req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/overview", nil),
			testutil.SessionUserFor(u))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s overview: got %d, want 403", role, rec.Code)
		}
	}
}

func TestMe_Volunteer(t *testing.T) {
	router, svc := setup(t)
	victim := testutil.AddUser(t, svc, "victim@help.com", models.RoleVictim)
	volunteer := testutil.AddUser(t, svc, "volunteer@helper.com", models.RoleVolunteer)

	open := testutil.AddRequest(t, svc, victim.ID)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if _, err := svc.Requests.Assign(ctx, open.ID, volunteer.ID); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	req := testutil.WithUser(httptest.NewRequest(http.MethodGet, "/me", nil),
		testutil.SessionUserFor(volunteer))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d; body %s", rec.Code, rec.Body.String())
	}
	var st service.MyStats
	if err := json.Unmarshal(rec.Body.Bytes(), &st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if st.Role != models.RoleVolunteer || st.ActiveAssignments != 1 {
		t.Errorf("stats: got %+v", st)
	}
}

func TestMe_Unauthenticated(t *testing.T) {
	router, _ := setup(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}
