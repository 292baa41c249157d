// internal/app/store/safezones/safezonestore.go
package safezonestore

import (
	"context"
	"strings"

	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Store holds the safe zone collection. Zones flip between active and
// full automatically as occupancy moves against capacity; closed is set
// only by an operator and is terminal here.
type Store interface {
	List(ctx context.Context) ([]models.SafeZone, error)
	GetByID(ctx context.Context, id string) (models.SafeZone, error)
	Create(ctx context.Context, z models.SafeZone) (models.SafeZone, error)
	UpdateOccupancy(ctx context.Context, id string, occupancy int) (models.SafeZone, error)
}

// validate checks the required fields for a new safe zone.
func validate(z models.SafeZone) error {
	if strings.TrimSpace(z.Name) == "" {
		return faults.Validation("name", "is required")
	}
	if !models.ValidZoneType(z.Type) {
		return faults.Validation("type", "is not a recognized zone type")
	}
	if z.Capacity <= 0 {
		return faults.Validation("capacity", "must be a positive integer")
	}
	if strings.TrimSpace(z.Location.Address) == "" {
		return faults.Validation("location.address", "is required")
	}
	if strings.TrimSpace(z.Contact.Name) == "" {
		return faults.Validation("contact.name", "is required")
	}
	if strings.TrimSpace(z.Contact.Phone) == "" {
		return faults.Validation("contact.phone", "is required")
	}
	return nil
}

// statusFor derives the zone status from occupancy against capacity.
func statusFor(occupancy, capacity int) string {
	if occupancy >= capacity {
		return models.ZoneFull
	}
	return models.ZoneActive
}
