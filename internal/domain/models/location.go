// internal/domain/models/location.go
package models

// Location pins an entity to a point on the map. Latitude, longitude,
// and address travel together; a partially filled location is invalid.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
	Address   string  `bson:"address" json:"address"`
}

// ContactInfo is how responders reach the poster of a record.
type ContactInfo struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}
