// internal/app/service/filter.go
package service

import (
	"strings"

	"github.com/reliefworks/reliefhub/internal/app/system/search"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// RequestFilter narrows a request list. Empty or "all" values match
// everything; set values are conjunctive.
type RequestFilter struct {
	Search  string
	Type    string
	Status  string
	Urgency string
}

// ResourceFilter narrows a resource list the same way.
type ResourceFilter struct {
	Search       string
	Type         string
	Availability string
}

// wildcard reports whether a filter value imposes no constraint.
func wildcard(v string) bool {
	v = strings.TrimSpace(strings.ToLower(v))
	return v == "" || v == "all"
}

func fieldMatches(filter, value string) bool {
	return wildcard(filter) || strings.EqualFold(strings.TrimSpace(filter), value)
}

// FilterRequests returns the requests matching the filter. Pure; the
// input slice is not modified.
func FilterRequests(all []models.HelpRequest, f RequestFilter) []models.HelpRequest {
	out := make([]models.HelpRequest, 0, len(all))
	for _, r := range all {
		if !search.Matches(f.Search, r.Title, r.Description) {
			continue
		}
		if !fieldMatches(f.Type, r.Type) {
			continue
		}
		if !fieldMatches(f.Status, r.Status) {
			continue
		}
		if !fieldMatches(f.Urgency, r.Urgency) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterResources returns the resources matching the filter.
func FilterResources(all []models.Resource, f ResourceFilter) []models.Resource {
	out := make([]models.Resource, 0, len(all))
	for _, r := range all {
		if !search.Matches(f.Search, r.Title, r.Description) {
			continue
		}
		if !fieldMatches(f.Type, r.Type) {
			continue
		}
		if !fieldMatches(f.Availability, r.Availability) {
			continue
		}
		out = append(out, r)
	}
	return out
}
