// internal/app/store/resources/mongostore.go
package resourcestore

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

// Mongo is the MongoDB-backed resource store.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo creates a resource store over the "resources" collection.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("resources")}
}

// List returns all resources.
func (s *Mongo) List(ctx context.Context) ([]models.Resource, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Resource
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the resource with the given id.
func (s *Mongo) GetByID(ctx context.Context, id string) (models.Resource, error) {
	var r models.Resource
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Resource{}, faults.NotFound("resource", id)
	}
	if err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// Create inserts a new resource, assigning the id and timestamps.
func (s *Mongo) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	if err := validate(r); err != nil {
		return models.Resource{}, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.TitleCI = text.Fold(r.Title)
	if r.Availability == "" {
		r.Availability = models.AvailabilityAvailable
	}
	if r.Priority == "" {
		r.Priority = models.PriorityMedium
	}
	r.PostedAt = now
	r.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// UpdateAvailability moves a resource one step along
// available->reserved->distributed. The transition check runs inside a
// single conditional update so concurrent movers cannot both succeed.
func (s *Mongo) UpdateAvailability(ctx context.Context, id, to string) (models.Resource, error) {
	if !models.ValidAvailability(to) {
		return models.Resource{}, faults.Validation("availability", "is not a recognized state")
	}
	var from string
	switch to {
	case models.AvailabilityReserved:
		from = models.AvailabilityAvailable
	case models.AvailabilityDistributed:
		from = models.AvailabilityReserved
	default:
		return models.Resource{}, faults.Conflict("availability cannot return to " + to)
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.Resource
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "availability": from},
		bson.M{"$set": bson.M{"availability": to, "updated_at": time.Now().UTC()}},
		after,
	).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either the id is unknown or the resource is not in the
		// required state; look it up to tell the two apart.
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return models.Resource{}, getErr
		}
		return models.Resource{}, faults.Conflict("availability cannot move to " + to)
	}
	if err != nil {
		return models.Resource{}, err
	}
	return r, nil
}
