package testutil

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/service"
	requeststore "github.com/reliefworks/reliefhub/internal/app/store/requests"
	resourcestore "github.com/reliefworks/reliefhub/internal/app/store/resources"
	safezonestore "github.com/reliefworks/reliefhub/internal/app/store/safezones"
	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// NewService builds a domain service over fresh memory stores.
func NewService(t *testing.T) *service.Service {
	t.Helper()
	return &service.Service{
		Users:     userstore.NewMemory(0),
		Resources: resourcestore.NewMemory(0),
		Requests:  requeststore.NewMemory(0),
		SafeZones: safezonestore.NewMemory(0),
		Log:       zap.NewNop(),
	}
}

// AddUser creates a user in the service's user store. NGO users get a
// placeholder organization so validation passes.
func AddUser(t *testing.T, svc *service.Service, email, role string) models.User {
	t.Helper()
	in := models.User{Email: email, Name: "User " + email, Role: role}
	if role == models.RoleNGO {
		in.Organization = "Test Relief Org"
	}
	u, err := svc.Users.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// AddRequest creates a valid open help request owned by the given user.
func AddRequest(t *testing.T, svc *service.Service, requestedBy string) models.HelpRequest {
	t.Helper()
	r, err := svc.Requests.Create(context.Background(), models.HelpRequest{
		Title:          "Need drinking water",
		Type:           models.ResourceWater,
		Description:    "Shelter ran out of water",
		Urgency:        models.UrgencyHigh,
		PeopleAffected: 40,
		Location:       models.Location{Latitude: 40.7, Longitude: -74.0, Address: "5th Street Shelter"},
		ContactInfo:    models.ContactInfo{Name: "Maria", Phone: "+1555000111"},
		RequestedBy:    requestedBy,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return r
}

// AddResource creates a valid available resource posted by the given user.
func AddResource(t *testing.T, svc *service.Service, postedBy string) models.Resource {
	t.Helper()
	r, err := svc.Resources.Create(context.Background(), models.Resource{
		Title:       "Bottled water",
		Type:        models.ResourceWater,
		Description: "500 half-liter bottles",
		Quantity:    500,
		Unit:        "bottles",
		Location:    models.Location{Latitude: 40.7, Longitude: -74.0, Address: "Warehouse 12"},
		ContactInfo: models.ContactInfo{Name: "Dispatch", Phone: "+1555000222"},
		PostedBy:    postedBy,
	})
	if err != nil {
		t.Fatalf("create resource: %v", err)
	}
	return r
}
