// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"strings"

	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Store holds the resource collection. Create assigns the id, stamps
// PostedAt/UpdatedAt, and defaults availability to available.
// UpdateAvailability only permits the forward transitions
// available->reserved->distributed.
type Store interface {
	List(ctx context.Context) ([]models.Resource, error)
	GetByID(ctx context.Context, id string) (models.Resource, error)
	Create(ctx context.Context, r models.Resource) (models.Resource, error)
	UpdateAvailability(ctx context.Context, id, to string) (models.Resource, error)
}

// validate checks the required fields for a new resource.
func validate(r models.Resource) error {
	if strings.TrimSpace(r.Title) == "" {
		return faults.Validation("title", "is required")
	}
	if !models.ValidResourceType(r.Type) {
		return faults.Validation("type", "is not a recognized resource type")
	}
	if r.Quantity <= 0 {
		return faults.Validation("quantity", "must be a positive integer")
	}
	if strings.TrimSpace(r.Unit) == "" {
		return faults.Validation("unit", "is required")
	}
	if strings.TrimSpace(r.Location.Address) == "" {
		return faults.Validation("location.address", "is required")
	}
	if strings.TrimSpace(r.ContactInfo.Name) == "" {
		return faults.Validation("contactInfo.name", "is required")
	}
	if strings.TrimSpace(r.ContactInfo.Phone) == "" {
		return faults.Validation("contactInfo.phone", "is required")
	}
	if r.Priority != "" && !models.ValidPriority(r.Priority) {
		return faults.Validation("priority", "is not a recognized priority")
	}
	if r.Availability != "" && r.Availability != models.AvailabilityAvailable {
		return faults.Validation("availability", "new resources must start available")
	}
	return nil
}
