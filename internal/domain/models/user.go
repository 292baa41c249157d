// internal/domain/models/user.go
package models

import "time"

// Roles a user can hold. Role is fixed at registration; there is no
// role-change operation.
const (
	RoleNGO       = "ngo"
	RoleVolunteer = "volunteer"
	RoleVictim    = "victim"
)

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	switch role {
	case RoleNGO, RoleVolunteer, RoleVictim:
		return true
	}
	return false
}

// User represents NGOs, volunteers, and victims.
//
// Email is unique across all users. Organization is required when the
// role is "ngo" and unused otherwise.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Email        string `bson:"email" json:"email"`
	EmailCI      string `bson:"email_ci" json:"-"` // lowercase, diacritics-stripped
	Name         string `bson:"name" json:"name"`
	Role         string `bson:"role" json:"role"` // ngo | volunteer | victim
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty"`
	Organization string `bson:"organization,omitempty" json:"organization,omitempty"`
	Verified     bool   `bson:"verified" json:"verified"`

	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
