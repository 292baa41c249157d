package safezonestore_test

import (
	"context"
	"errors"
	"testing"

	safezonestore "github.com/reliefworks/reliefhub/internal/app/store/safezones"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

func validZone() models.SafeZone {
	return models.SafeZone{
		Name:     "Central Evacuation Site",
		Type:     models.ZoneEvacuation,
		Capacity: 200,
		Location: models.Location{
			Latitude:  40.7580,
			Longitude: -73.9855,
			Address:   "Times Square, NYC",
		},
		Contact: models.ContactInfo{
			Name:  "Site Manager",
			Phone: "+1222333444",
		},
		ManagedBy: "user-1",
	}
}

func TestCreate_DerivesStatus(t *testing.T) {
	store := safezonestore.NewMemory(0)

	created, err := store.Create(context.Background(), validZone())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Status != models.ZoneActive {
		t.Errorf("status: got %q, want active", created.Status)
	}
}

func TestUpdateOccupancy_FullAtCapacity(t *testing.T) {
	store := safezonestore.NewMemory(0)
	ctx := context.Background()

	created, err := store.Create(ctx, validZone())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	z, err := store.UpdateOccupancy(ctx, created.ID, 200)
	if err != nil {
		t.Fatalf("UpdateOccupancy: %v", err)
	}
	if z.Status != models.ZoneFull {
		t.Errorf("status: got %q, want full", z.Status)
	}

	// Back under capacity reopens the zone.
	z, err = store.UpdateOccupancy(ctx, created.ID, 150)
	if err != nil {
		t.Fatalf("UpdateOccupancy: %v", err)
	}
	if z.Status != models.ZoneActive {
		t.Errorf("status: got %q, want active", z.Status)
	}
}

func TestUpdateOccupancy_Negative(t *testing.T) {
	store := safezonestore.NewMemory(0)
	ctx := context.Background()

	created, err := store.Create(ctx, validZone())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = store.UpdateOccupancy(ctx, created.ID, -1)
	if !errors.Is(err, faults.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestCreate_RequiresCapacity(t *testing.T) {
	store := safezonestore.NewMemory(0)

	z := validZone()
	z.Capacity = 0
	_, err := store.Create(context.Background(), z)
	if !errors.Is(err, faults.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
