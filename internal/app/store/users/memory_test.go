package userstore_test

import (
	"context"
	"errors"
	"testing"

	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

func validUser() models.User {
	return models.User{
		Email: "helper@example.org",
		Name:  "Test Helper",
		Role:  models.RoleVolunteer,
		Phone: "+1234567890",
	}
}

func TestCreate_AssignsIDAndTimestamp(t *testing.T) {
	store := userstore.NewMemory(0)
	ctx := context.Background()

	created, err := store.Create(ctx, validUser())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected non-empty id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	store := userstore.NewMemory(0)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i, email := range []string{"a@x.org", "b@x.org", "c@x.org"} {
		u := validUser()
		u.Email = email
		created, err := store.Create(ctx, u)
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if seen[created.ID] {
			t.Errorf("duplicate id %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	store := userstore.NewMemory(0)
	ctx := context.Background()

	if _, err := store.Create(ctx, validUser()); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	dup := validUser()
	dup.Email = "HELPER@example.org" // different case, same address
	_, err := store.Create(ctx, dup)
	if !errors.Is(err, faults.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestCreate_NGORequiresOrganization(t *testing.T) {
	store := userstore.NewMemory(0)
	ctx := context.Background()

	u := validUser()
	u.Role = models.RoleNGO
	u.Organization = ""

	_, err := store.Create(ctx, u)
	if !errors.Is(err, faults.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	store := userstore.NewMemory(0)
	ctx := context.Background()

	created, err := store.Create(ctx, validUser())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.GetByEmail(ctx, "Helper@Example.ORG")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByEmail returned id %q, want %q", got.ID, created.ID)
	}
}

func TestGetByID_Unknown(t *testing.T) {
	store := userstore.NewMemory(0)

	_, err := store.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, faults.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList_InsertionOrder(t *testing.T) {
	store := userstore.NewMemory(0)
	ctx := context.Background()

	var ids []string
	for _, email := range []string{"a@x.org", "b@x.org", "c@x.org"} {
		u := validUser()
		u.Email = email
		created, err := store.Create(ctx, u)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, created.ID)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != len(ids) {
		t.Fatalf("List returned %d users, want %d", len(all), len(ids))
	}
	for i, u := range all {
		if u.ID != ids[i] {
			t.Errorf("List[%d].ID = %q, want %q", i, u.ID, ids[i])
		}
	}
}
