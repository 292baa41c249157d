// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// Store holds the user collection. Create assigns the id and timestamps
// and enforces email uniqueness; lookups by email are case-insensitive.
type Store interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// validate checks the required fields for a new user.
func validate(u models.User) error {
	if strings.TrimSpace(u.Email) == "" {
		return faults.Validation("email", "is required")
	}
	if strings.TrimSpace(u.Name) == "" {
		return faults.Validation("name", "is required")
	}
	if !models.ValidRole(u.Role) {
		return faults.Validation("role", "must be ngo, volunteer, or victim")
	}
	if u.Role == models.RoleNGO && strings.TrimSpace(u.Organization) == "" {
		return faults.Validation("organization", "is required for ngo accounts")
	}
	return nil
}

// foldEmail normalizes an email for uniqueness and lookup.
func foldEmail(email string) string {
	return text.Fold(strings.TrimSpace(email))
}
