// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/reliefworks/reliefhub/internal/app/system/authutil"
	"github.com/reliefworks/reliefhub/internal/domain/models"
)

// demoPassword is the shared password for all seeded demo accounts.
const demoPassword = "password123"

// seedDemoData loads the demo accounts and a handful of records so a
// fresh instance has something to show. It is a no-op when any users
// already exist, so re-running against a seeded database is safe.
func seedDemoData(ctx context.Context, deps DBDeps, logger *zap.Logger) error {
	existing, err := deps.Users.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("demo seed skipped, users already present",
			zap.Int("count", len(existing)))
		return nil
	}

	hash, err := authutil.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	ngo, err := deps.Users.Create(ctx, models.User{
		Email:        "ngo@relief.org",
		Name:         "Relief Organization",
		Role:         models.RoleNGO,
		Organization: "Global Relief Foundation",
		Verified:     true,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	volunteer, err := deps.Users.Create(ctx, models.User{
		Email:        "volunteer@helper.com",
		Name:         "John Volunteer",
		Role:         models.RoleVolunteer,
		Phone:        "+1234567890",
		Verified:     true,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	victim, err := deps.Users.Create(ctx, models.User{
		Email:        "victim@help.com",
		Name:         "Jane Victim",
		Role:         models.RoleVictim,
		Phone:        "+1987654321",
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	expiry := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	seedResources := []models.Resource{
		{
			Title:       "Emergency Food Supplies",
			Type:        models.ResourceFood,
			Description: "Rice, canned goods, and water for 50 families",
			Quantity:    50,
			Unit:        "family packs",
			Location: models.Location{
				Latitude: 40.7128, Longitude: -74.0060,
				Address: "Relief Center, NYC",
			},
			ContactInfo: models.ContactInfo{
				Name: "Relief Organization", Phone: "+1234567890",
				Email: "ngo@relief.org",
			},
			Priority: models.PriorityHigh,
			PostedBy: ngo.ID,
		},
		{
			Title:       "Medical Supplies",
			Type:        models.ResourceMedicine,
			Description: "First aid kits, antibiotics, and pain relief medication",
			Quantity:    100,
			Unit:        "kits",
			Location: models.Location{
				Latitude: 40.7589, Longitude: -73.9851,
				Address: "Medical Center, NYC",
			},
			ContactInfo: models.ContactInfo{
				Name: "Medical Relief Team", Phone: "+1234567891",
			},
			Priority:   models.PriorityUrgent,
			ExpiryDate: &expiry,
			PostedBy:   ngo.ID,
		},
	}
	for _, r := range seedResources {
		if _, err := deps.Resources.Create(ctx, r); err != nil {
			return err
		}
	}

	if _, err := deps.Requests.Create(ctx, models.HelpRequest{
		Title:       "Emergency Shelter Needed",
		Type:        models.ResourceShelter,
		Description: "Family of 4 needs temporary shelter after building collapse",
		Urgency:     models.UrgencyCritical,
		Location: models.Location{
			Latitude: 40.7505, Longitude: -73.9934,
			Address: "123 Emergency St, NYC",
		},
		ContactInfo: models.ContactInfo{
			Name: "Jane Victim", Phone: "+1987654321",
		},
		PeopleAffected: 4,
		RequestedBy:    victim.ID,
	}); err != nil {
		return err
	}

	medReq, err := deps.Requests.Create(ctx, models.HelpRequest{
		Title:       "Medical Assistance Required",
		Type:        models.ResourceMedicine,
		Description: "Elderly person needs insulin and blood pressure medication",
		Urgency:     models.UrgencyHigh,
		Location: models.Location{
			Latitude: 40.7614, Longitude: -73.9776,
			Address: "456 Help Ave, NYC",
		},
		ContactInfo: models.ContactInfo{
			Name: "Emergency Contact", Phone: "+1555666777",
		},
		PeopleAffected: 1,
		RequestedBy:    victim.ID,
	})
	if err != nil {
		return err
	}
	if _, err := deps.Requests.Assign(ctx, medReq.ID, volunteer.ID); err != nil {
		return err
	}

	logger.Info("demo data seeded",
		zap.String("ngo", ngo.Email),
		zap.String("volunteer", volunteer.Email),
		zap.String("victim", victim.Email))
	return nil
}
