// internal/app/store/users/mongostore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"github.com/reliefworks/reliefhub/internal/domain/faults"
	"github.com/reliefworks/reliefhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo is the MongoDB-backed user store.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo creates a user store over the "users" collection.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("users")}
}

// Create inserts a new user. The unique index on email_ci enforces
// email uniqueness.
func (s *Mongo) Create(ctx context.Context, u models.User) (models.User, error) {
	if err := validate(u); err != nil {
		return models.User{}, err
	}

	u.ID = uuid.NewString()
	u.EmailCI = foldEmail(u.Email)
	u.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, faults.Conflict("a user with this email already exists")
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID returns the user with the given id.
func (s *Mongo) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, faults.NotFound("user", id)
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail returns the user with the given email, case-insensitively.
func (s *Mongo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email_ci": foldEmail(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, faults.NotFound("user", email)
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// List returns all users.
func (s *Mongo) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
