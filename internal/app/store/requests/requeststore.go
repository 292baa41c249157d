// internal/app/store/requests/requeststore.go
package requeststore

import (
	"context"
	"strings"

	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Store holds the help request collection.
//
// Create forces the status to open; a request can only gain an assignee
// through Assign, which moves open -> in-progress. Complete moves
// in-progress -> resolved|closed. Two Assign calls against the same id
// cannot both succeed: the second observes the first's effect and fails
// with a conflict.
type Store interface {
	List(ctx context.Context) ([]models.HelpRequest, error)
	GetByID(ctx context.Context, id string) (models.HelpRequest, error)
	Create(ctx context.Context, r models.HelpRequest) (models.HelpRequest, error)
	Assign(ctx context.Context, id, volunteerID string) (models.HelpRequest, error)
	Complete(ctx context.Context, id, status string) (models.HelpRequest, error)
}

// validate checks the required fields for a new help request.
func validate(r models.HelpRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return faults.Validation("title", "is required")
	}
	if !models.ValidRequestType(r.Type) {
		return faults.Validation("type", "is not a recognized request type")
	}
	if !models.ValidUrgency(r.Urgency) {
		return faults.Validation("urgency", "is not a recognized urgency")
	}
	if r.PeopleAffected <= 0 {
		return faults.Validation("peopleAffected", "must be a positive integer")
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
	// Only the assign operation may set an assignee.
	if r.AssignedTo != "" {
		return faults.Validation("assignedTo", "cannot be set at creation")
	}
	return nil
}
