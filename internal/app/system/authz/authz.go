// internal/app/system/authz/authz.go
package authz

import (
	"strings"

	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Actions a role may be granted. Read operations are not listed: every
// signed-in role sees all resources and requests; roles only gate
// mutations and the NGO aggregate view.
const (
	ActionCreateResource  = "create_resource"
	ActionCreateRequest   = "create_request"
	ActionAssignRequest   = "assign_request"
	ActionCompleteRequest = "complete_request"
	ActionUpdateResource  = "update_resource"
	ActionViewOverview    = "view_overview"
	ActionManageSafeZones = "manage_safezones"
	ActionBroadcastAlert  = "broadcast_alert"
)

// policy is the single authorization table: (role, action) -> allowed.
// Handlers and the domain service consult it before every mutation
// instead of branching on roles inline.
var policy = map[string]map[string]bool{
	models.RoleNGO: {
		ActionCreateResource:  true,
		ActionCreateRequest:   true,
		ActionCompleteRequest: true,
		ActionUpdateResource:  true,
		ActionViewOverview:    true,
		ActionManageSafeZones: true,
		ActionBroadcastAlert:  true,
	},
	models.RoleVolunteer: {
		ActionCreateResource:  true,
		ActionAssignRequest:   true,
		ActionCompleteRequest: true,
		ActionUpdateResource:  true,
	},
	models.RoleVictim: {
		ActionCreateRequest: true,
	},
}

// Allowed reports whether the role may perform the action.
func Allowed(role, action string) bool {
	return policy[strings.ToLower(strings.TrimSpace(role))][action]
}

// Require returns nil when the role may perform the action and an
// AuthorizationError otherwise.
func Require(role, action string) error {
	if !Allowed(role, action) {
		return faults.Authorization(role, action)
	}
	return nil
}
