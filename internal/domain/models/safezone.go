// internal/domain/models/safezone.go
package models

import "time"

// Safe zone types.
const (
	ZoneEvacuation   = "evacuation"
	ZoneShelter      = "shelter"
	ZoneMedical      = "medical"
	ZoneDistribution = "distribution"
)

// Safe zone operational states.
const (
	ZoneActive = "active"
	ZoneFull   = "full"
	ZoneClosed = "closed"
)

// ValidZoneType reports whether t is a recognized safe zone type.
func ValidZoneType(t string) bool {
	switch t {
	case ZoneEvacuation, ZoneShelter, ZoneMedical, ZoneDistribution:
		return true
	}
	return false
}

// SafeZone is a managed gathering point (evacuation site, shelter,
// medical post, or distribution center) run by an NGO.
type SafeZone struct {
	ID     string `bson:"_id,omitempty" json:"id"`
	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped

	Type     string   `bson:"type" json:"type"`
	Location Location `bson:"location" json:"location"`

	Capacity         int      `bson:"capacity" json:"capacity"`
	CurrentOccupancy int      `bson:"current_occupancy" json:"currentOccupancy"`
	Facilities       []string `bson:"facilities,omitempty" json:"facilities,omitempty"`

	Contact ContactInfo `bson:"contact" json:"contact"`
	Status  string      `bson:"status" json:"status"` // active | full | closed

	ManagedBy string    `bson:"managed_by" json:"managedBy"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
