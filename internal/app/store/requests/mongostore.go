// internal/app/store/requests/mongostore.go
package requeststore

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

// Mongo is the MongoDB-backed help request store.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo creates a request store over the "help_requests" collection.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("help_requests")}
}

// List returns all help requests.
func (s *Mongo) List(ctx context.Context) ([]models.HelpRequest, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.HelpRequest
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the request with the given id.
func (s *Mongo) GetByID(ctx context.Context, id string) (models.HelpRequest, error) {
	var r models.HelpRequest
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.HelpRequest{}, faults.NotFound("request", id)
	}
	if err != nil {
		return models.HelpRequest{}, err
	}
	return r, nil
}

// Create inserts a new request with status open, assigning the id and
// timestamps.
func (s *Mongo) Create(ctx context.Context, r models.HelpRequest) (models.HelpRequest, error) {
	if err := validate(r); err != nil {
		return models.HelpRequest{}, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.TitleCI = text.Fold(r.Title)
	r.Status = models.StatusOpen
	r.CreatedAt = now
	r.UpdatedAt = now
	r.ResolvedAt = nil

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.HelpRequest{}, err
	}
	return r, nil
}

// Assign moves an open, unassigned request to in-progress. The state
// check runs inside one conditional update, so two concurrent Assign
// calls cannot both succeed.
func (s *Mongo) Assign(ctx context.Context, id, volunteerID string) (models.HelpRequest, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.HelpRequest
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":    id,
			"status": models.StatusOpen,
			"assigned_to": bson.M{
				"$in": bson.A{nil, ""},
			},
		},
		bson.M{"$set": bson.M{
			"assigned_to": volunteerID,
			"status":      models.StatusInProgress,
			"updated_at":  time.Now().UTC(),
		}},
		after,
	).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return models.HelpRequest{}, getErr
		}
		return models.HelpRequest{}, faults.Conflict("request is not open for assignment")
	}
	if err != nil {
		return models.HelpRequest{}, err
	}
	return r, nil
}

// Complete moves an in-progress request to resolved or closed.
func (s *Mongo) Complete(ctx context.Context, id, status string) (models.HelpRequest, error) {
	if !models.TerminalStatus(status) {
		return models.HelpRequest{}, faults.Validation("status", "must be resolved or closed")
	}

	now := time.Now().UTC()
	set := bson.M{"status": status, "updated_at": now}
	if status == models.StatusResolved {
		set["resolved_at"] = now
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.HelpRequest
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": models.StatusInProgress},
		bson.M{"$set": set},
		after,
	).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return models.HelpRequest{}, getErr
		}
		return models.HelpRequest{}, faults.Conflict("only in-progress requests can be completed")
	}
	if err != nil {
		return models.HelpRequest{}, err
	}
	return r, nil
}
