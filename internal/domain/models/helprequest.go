// internal/domain/models/helprequest.go
package models

import "time"

// Help request types. Requests add "rescue" on top of the resource types.
const (
	RequestRescue = "rescue"
)

// Urgency levels for help requests. Distinct from resource priority.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Help request fulfillment states.
//
//	open --assign--> in-progress --complete--> resolved | closed
//
// No transition returns to open. Resolved and closed are terminal.
const (
	StatusOpen       = "open"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

// ValidRequestType reports whether t is a recognized help request type.
func ValidRequestType(t string) bool {
	return t == RequestRescue || ValidResourceType(t)
}

// ValidUrgency reports whether u is a recognized urgency level.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// ValidStatus reports whether s is a recognized request status.
func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// TerminalStatus reports whether s is a terminal request status.
func TerminalStatus(s string) bool {
	return s == StatusResolved || s == StatusClosed
}

// HelpRequest is a request for aid posted by a victim or an NGO on a
// victim's behalf.
//
// Invariant: AssignedTo is set exactly when the request has left the
// open state through assignment. A request with status open never has
// AssignedTo set, and only the assign operation may set it.
type HelpRequest struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped

	Type        string `bson:"type" json:"type"`
	Description string `bson:"description" json:"description"`
	Urgency     string `bson:"urgency" json:"urgency"`

	Location    Location    `bson:"location" json:"location"`
	ContactInfo ContactInfo `bson:"contact_info" json:"contactInfo"`

	PeopleAffected int    `bson:"people_affected" json:"peopleAffected"`
	Status         string `bson:"status" json:"status"`

	RequestedBy string `bson:"requested_by" json:"requestedBy"`
	AssignedTo  string `bson:"assigned_to,omitempty" json:"assignedTo,omitempty"`

	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
	ResolvedAt *time.Time `bson:"resolved_at,omitempty" json:"resolvedAt,omitempty"`
}
