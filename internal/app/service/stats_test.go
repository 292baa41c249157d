package service_test

import (
	"testing"

	"github.com/reliefworks/reliefhub/internal/app/service"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

func TestComputeOverviewStats_Empty(t *testing.T) {
	st := service.ComputeOverviewStats(nil, nil)
	if st != (service.OverviewStats{}) {
		t.Errorf("empty inputs: got %+v, want zero stats", st)
	}
}

func TestComputeOverviewStats_ResponseRate(t *testing.T) {
	var requests []models.HelpRequest
	for i := 0; i < 3; i++ {
		requests = append(requests, models.HelpRequest{Status: models.StatusInProgress})
	}
	for i := 0; i < 7; i++ {
		requests = append(requests, models.HelpRequest{Status: models.StatusOpen})
	}

	st := service.ComputeOverviewStats(nil, requests)
	if st.ResponseRate != 30 {
		t.Errorf("responseRate: got %d, want 30", st.ResponseRate)
	}
	if st.OpenRequests != 7 || st.InProgressRequests != 3 {
		t.Errorf("counts: got open=%d inProgress=%d", st.OpenRequests, st.InProgressRequests)
	}
}

func TestComputeOverviewStats_RatesRound(t *testing.T) {
	// 1 of 3 in progress is 33.33..., which rounds to 33.
	requests := []models.HelpRequest{
		{Status: models.StatusInProgress},
		{Status: models.StatusOpen},
		{Status: models.StatusOpen},
	}
	if st := service.ComputeOverviewStats(nil, requests); st.ResponseRate != 33 {
		t.Errorf("responseRate: got %d, want 33", st.ResponseRate)
	}

	// 2 of 3 is 66.66..., which rounds to 67.
	requests[1].Status = models.StatusInProgress
	if st := service.ComputeOverviewStats(nil, requests); st.ResponseRate != 67 {
		t.Errorf("responseRate: got %d, want 67", st.ResponseRate)
	}
}

func TestComputeOverviewStats_Counters(t *testing.T) {
	resources := []models.Resource{
		{Availability: models.AvailabilityAvailable},
		{Availability: models.AvailabilityAvailable},
		{Availability: models.AvailabilityReserved},
		{Availability: models.AvailabilityDistributed},
	}
	requests := sampleRequests()

	st := service.ComputeOverviewStats(resources, requests)
	if st.TotalResources != 4 {
		t.Errorf("totalResources: got %d, want 4", st.TotalResources)
	}
	if st.AvailableResources != 2 {
		t.Errorf("availableResources: got %d, want 2", st.AvailableResources)
	}
	if st.TotalRequests != 6 {
		t.Errorf("totalRequests: got %d, want 6", st.TotalRequests)
	}
	if st.OpenRequests != 2 {
		t.Errorf("openRequests: got %d, want 2", st.OpenRequests)
	}
	if st.InProgressRequests != 2 {
		t.Errorf("inProgressRequests: got %d, want 2", st.InProgressRequests)
	}
	if st.CriticalRequests != 2 {
		t.Errorf("criticalRequests: got %d, want 2", st.CriticalRequests)
	}
	// 2 of 6 in progress is 33.33..., rounds to 33.
	if st.ResponseRate != 33 {
		t.Errorf("responseRate: got %d, want 33", st.ResponseRate)
	}
}
