// internal/app/store/safezones/mongostore.go
package safezonestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB-backed safe zone store.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo creates a safe zone store over the "safe_zones" collection.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("safe_zones")}
}

// List returns all safe zones.
func (s *Mongo) List(ctx context.Context) ([]models.SafeZone, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SafeZone
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the safe zone with the given id.
func (s *Mongo) GetByID(ctx context.Context, id string) (models.SafeZone, error) {
	var z models.SafeZone
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&z)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SafeZone{}, faults.NotFound("safe zone", id)
	}
	if err != nil {
		return models.SafeZone{}, err
	}
	return z, nil
}

// Create inserts a new safe zone, assigning the id and timestamps.
func (s *Mongo) Create(ctx context.Context, z models.SafeZone) (models.SafeZone, error) {
	if err := validate(z); err != nil {
		return models.SafeZone{}, err
	}

	now := time.Now().UTC()
	z.ID = uuid.NewString()
	z.NameCI = text.Fold(z.Name)
	z.Status = statusFor(z.CurrentOccupancy, z.Capacity)
	z.CreatedAt = now
	z.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, z); err != nil {
		return models.SafeZone{}, err
	}
	return z, nil
}

// UpdateOccupancy sets the zone's occupancy and rederives its status.
func (s *Mongo) UpdateOccupancy(ctx context.Context, id string, occupancy int) (models.SafeZone, error) {
	if occupancy < 0 {
		return models.SafeZone{}, faults.Validation("currentOccupancy", "cannot be negative")
	}

	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return models.SafeZone{}, err
	}
	if cur.Status == models.ZoneClosed {
		return models.SafeZone{}, faults.Conflict("zone is closed")
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var z models.SafeZone
	err = s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.ZoneClosed}},
		bson.M{"$set": bson.M{
			"current_occupancy": occupancy,
			"status":            statusFor(occupancy, cur.Capacity),
			"updated_at":        time.Now().UTC(),
		}},
		after,
	).Decode(&z)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SafeZone{}, faults.Conflict("zone is closed")
	}
	if err != nil {
		return models.SafeZone{}, err
	}
	return z, nil
}
