// internal/app/service/service.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	requeststore "github.com/reliefworks/reliefhub/internal/app/store/requests"
	resourcestore "github.com/reliefworks/reliefhub/internal/app/store/resources"
	safezonestore "github.com/reliefworks/reliefhub/internal/app/store/safezones"
	userstore "github.com/reliefworks/reliefhub/internal/app/store/users"
	"github.com/reliefworks/reliefhub/internal/app/system/authz"
	"github.com/reliefworks/reliefhub/internal/app/system/htmlsanitize"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Actor is the caller of a role-gated operation.
type Actor struct {
	ID   string
	Role string
}

// Service sits between the HTTP features and the record stores. It owns
// the role checks and the validated state transitions; it never filters
// reads by role (all roles see all resources and requests).
type Service struct {
	Users     userstore.Store
	Resources resourcestore.Store
	Requests  requeststore.Store
	SafeZones safezonestore.Store
	Log       *zap.Logger
}

// CreateResource creates a resource on behalf of the actor. Only ngo
// and volunteer roles may post resources.
func (s *Service) CreateResource(ctx context.Context, actor Actor, in models.Resource) (models.Resource, error) {
	if err := authz.Require(actor.Role, authz.ActionCreateResource); err != nil {
		return models.Resource{}, err
	}
	in.Title = htmlsanitize.Clean(in.Title)
	in.Description = htmlsanitize.Clean(in.Description)
	in.PostedBy = actor.ID
	return s.Resources.Create(ctx, in)
}

// UpdateAvailability moves a resource one step forward in its
// availability lifecycle (available->reserved->distributed).
func (s *Service) UpdateAvailability(ctx context.Context, actor Actor, id, to string) (models.Resource, error) {
	if err := authz.Require(actor.Role, authz.ActionUpdateResource); err != nil {
		return models.Resource{}, err
	}
	return s.Resources.UpdateAvailability(ctx, id, to)
}

// CreateRequest creates a help request on behalf of the actor. Only
// victim and ngo roles may open requests.
func (s *Service) CreateRequest(ctx context.Context, actor Actor, in models.HelpRequest) (models.HelpRequest, error) {
	if err := authz.Require(actor.Role, authz.ActionCreateRequest); err != nil {
		return models.HelpRequest{}, err
	}
	in.Title = htmlsanitize.Clean(in.Title)
	in.Description = htmlsanitize.Clean(in.Description)
	in.RequestedBy = actor.ID
	return s.Requests.Create(ctx, in)
}

// AssignToVolunteer assigns an open request to a volunteer. Only
// volunteers may take assignments; an empty volunteerID means the actor
// takes the request themselves. The store is not touched when the role
// check or the target lookup fails.
func (s *Service) AssignToVolunteer(ctx context.Context, actor Actor, requestID, volunteerID string) (models.HelpRequest, error) {
	if err := authz.Require(actor.Role, authz.ActionAssignRequest); err != nil {
		return models.HelpRequest{}, err
	}

	if volunteerID == "" {
		volunteerID = actor.ID
	}
	target, err := s.Users.GetByID(ctx, volunteerID)
	if err != nil {
		return models.HelpRequest{}, faults.Validation("volunteerId", "is not a known user")
	}
	if !strings.EqualFold(target.Role, models.RoleVolunteer) {
		return models.HelpRequest{}, faults.Validation("volunteerId", "must refer to a volunteer")
	}

	return s.Requests.Assign(ctx, requestID, volunteerID)
}

// ResolveRequest marks an in-progress request resolved. NGOs may
// resolve any request; a volunteer only their own assignment.
func (s *Service) ResolveRequest(ctx context.Context, actor Actor, requestID string) (models.HelpRequest, error) {
	return s.complete(ctx, actor, requestID, models.StatusResolved)
}

// CloseRequest closes an in-progress request without resolution.
func (s *Service) CloseRequest(ctx context.Context, actor Actor, requestID string) (models.HelpRequest, error) {
	return s.complete(ctx, actor, requestID, models.StatusClosed)
}

func (s *Service) complete(ctx context.Context, actor Actor, requestID, status string) (models.HelpRequest, error) {
	if err := authz.Require(actor.Role, authz.ActionCompleteRequest); err != nil {
		return models.HelpRequest{}, err
	}

	if strings.EqualFold(actor.Role, models.RoleVolunteer) {
		req, err := s.Requests.GetByID(ctx, requestID)
		if err != nil {
			return models.HelpRequest{}, err
		}
		if req.AssignedTo != actor.ID {
			return models.HelpRequest{}, faults.Authorization(actor.Role, "complete a request assigned to someone else")
		}
	}

	return s.Requests.Complete(ctx, requestID, status)
}

// CreateSafeZone registers a safe zone. NGO only.
func (s *Service) CreateSafeZone(ctx context.Context, actor Actor, in models.SafeZone) (models.SafeZone, error) {
	if err := authz.Require(actor.Role, authz.ActionManageSafeZones); err != nil {
		return models.SafeZone{}, err
	}
	in.Name = htmlsanitize.Clean(in.Name)
	in.ManagedBy = actor.ID
	return s.SafeZones.Create(ctx, in)
}

// UpdateOccupancy sets a safe zone's current occupancy. NGO only.
func (s *Service) UpdateOccupancy(ctx context.Context, actor Actor, id string, occupancy int) (models.SafeZone, error) {
	if err := authz.Require(actor.Role, authz.ActionManageSafeZones); err != nil {
		return models.SafeZone{}, err
	}
	return s.SafeZones.UpdateOccupancy(ctx, id, occupancy)
}
