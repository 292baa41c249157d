// internal/app/service/stats.go
package service

import (
	"context"
	"math"
	"strings"

	"github.com/reliefworks/reliefhub/internal/app/system/authz"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// OverviewStats is the aggregate view shown on the coordinator
// dashboard. The response rate is the share of requests currently
// being worked, as a rounded percentage.
type OverviewStats struct {
	TotalResources     int `json:"totalResources"`
	AvailableResources int `json:"availableResources"`
	TotalRequests      int `json:"totalRequests"`
	OpenRequests       int `json:"openRequests"`
	CriticalRequests   int `json:"criticalRequests"`
	InProgressRequests int `json:"inProgressRequests"`
	ResponseRate       int `json:"responseRate"`
}

// ComputeOverviewStats derives the aggregate counters. Pure and
// deterministic given its inputs.
func ComputeOverviewStats(resources []models.Resource, requests []models.HelpRequest) OverviewStats {
	st := OverviewStats{
		TotalResources: len(resources),
		TotalRequests:  len(requests),
	}
	for _, r := range resources {
		if r.Availability == models.AvailabilityAvailable {
			st.AvailableResources++
		}
	}
	for _, r := range requests {
		switch r.Status {
		case models.StatusOpen:
			st.OpenRequests++
		case models.StatusInProgress:
			st.InProgressRequests++
		}
		if r.Urgency == models.UrgencyCritical {
			st.CriticalRequests++
		}
	}
	if st.TotalRequests > 0 {
		st.ResponseRate = int(math.Round(100 * float64(st.InProgressRequests) / float64(st.TotalRequests)))
	}
	return st
}

// Overview loads the full dataset and derives the aggregate stats.
// NGO only.
func (s *Service) Overview(ctx context.Context, actor Actor) (OverviewStats, error) {
	if err := authz.Require(actor.Role, authz.ActionViewOverview); err != nil {
		return OverviewStats{}, err
	}
	resources, err := s.Resources.List(ctx)
	if err != nil {
		return OverviewStats{}, err
	}
	requests, err := s.Requests.List(ctx)
	if err != nil {
		return OverviewStats{}, err
	}
	return ComputeOverviewStats(resources, requests), nil
}

// MyStats is the per-role dashboard summary. Only the fields relevant
// to the caller's role are populated.
type MyStats struct {
	Role string `json:"role"`

	// volunteer
	ActiveAssignments    int `json:"activeAssignments,omitempty"`
	CompletedAssignments int `json:"completedAssignments,omitempty"`

	// victim
	MyRequests         int `json:"myRequests,omitempty"`
	MyOpenRequests     int `json:"myOpenRequests,omitempty"`
	MyResolvedRequests int `json:"myResolvedRequests,omitempty"`

	// ngo
	MyResources  int `json:"myResources,omitempty"`
	OpenRequests int `json:"openRequests,omitempty"`
}

// Stats derives the caller's dashboard numbers from the shared dataset.
func (s *Service) Stats(ctx context.Context, actor Actor) (MyStats, error) {
	st := MyStats{Role: strings.ToLower(actor.Role)}

	requests, err := s.Requests.List(ctx)
	if err != nil {
		return MyStats{}, err
	}

	switch st.Role {
	case models.RoleVolunteer:
		for _, r := range requests {
			if r.AssignedTo != actor.ID {
				continue
			}
			switch r.Status {
			case models.StatusInProgress:
				st.ActiveAssignments++
			case models.StatusResolved, models.StatusClosed:
				st.CompletedAssignments++
			}
		}
	case models.RoleVictim:
		for _, r := range requests {
			if r.RequestedBy != actor.ID {
				continue
			}
			st.MyRequests++
			switch r.Status {
			case models.StatusOpen:
				st.MyOpenRequests++
			case models.StatusResolved:
				st.MyResolvedRequests++
			}
		}
	case models.RoleNGO:
		resources, err := s.Resources.List(ctx)
		if err != nil {
			return MyStats{}, err
		}
		for _, r := range resources {
			if r.PostedBy == actor.ID {
				st.MyResources++
			}
		}
		for _, r := range requests {
			if r.Status == models.StatusOpen {
				st.OpenRequests++
			}
		}
	}
	return st, nil
}
