// internal/domain/models/resource.go
package models

import "time"

// Resource types.
const (
	ResourceFood      = "food"
	ResourceMedicine  = "medicine"
	ResourceShelter   = "shelter"
	ResourceWater     = "water"
	ResourceClothing  = "clothing"
	ResourceTransport = "transport"
	ResourceOther     = "other"
)

// Availability states. Transitions are monotonic:
// available -> reserved -> distributed. There is no reverse transition.
const (
	AvailabilityAvailable   = "available"
	AvailabilityReserved    = "reserved"
	AvailabilityDistributed = "distributed"
)

// Resource priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// ValidResourceType reports whether t is a recognized resource type.
func ValidResourceType(t string) bool {
	switch t {
	case ResourceFood, ResourceMedicine, ResourceShelter, ResourceWater,
		ResourceClothing, ResourceTransport, ResourceOther:
		return true
	}
	return false
}

// ValidAvailability reports whether a is a recognized availability state.
func ValidAvailability(a string) bool {
	switch a {
	case AvailabilityAvailable, AvailabilityReserved, AvailabilityDistributed:
		return true
	}
	return false
}

// ValidPriority reports whether p is a recognized priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// NextAvailability reports whether a resource may move from one
// availability state to another. Only the forward steps
// available->reserved and reserved->distributed are allowed.
func NextAvailability(from, to string) bool {
	switch {
	case from == AvailabilityAvailable && to == AvailabilityReserved:
		return true
	case from == AvailabilityReserved && to == AvailabilityDistributed:
		return true
	}
	return false
}

// Resource is an offer of material aid posted by an NGO or volunteer.
// Resources are never hard-deleted; UpdatedAt is refreshed on every
// mutation.
type Resource struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	Unit        string `bson:"unit" json:"unit"`

	Location    Location    `bson:"location" json:"location"`
	ContactInfo ContactInfo `bson:"contact_info" json:"contactInfo"`

	Availability string     `bson:"availability" json:"availability"`
	ExpiryDate   *time.Time `bson:"expiry_date,omitempty" json:"expiryDate,omitempty"`
	Priority     string     `bson:"priority" json:"priority"`

	PostedBy  string    `bson:"posted_by" json:"postedBy"`
	PostedAt  time.Time `bson:"posted_at" json:"postedAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
