// internal/app/store/programs/programstore.go
package programstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/placementhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding programs.
const Collection = "internship_programs"

var (
	// ErrDuplicateTitle is returned when a write would violate title uniqueness.
	ErrDuplicateTitle = errors.New("program title already exists")
	// ErrNotFound is returned when no program has the requested ID.
	ErrNotFound = errors.New("program not found")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

func (s *Store) Create(ctx context.Context, p models.InternshipProgram) (models.InternshipProgram, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.InternshipProgram{}, ErrDuplicateTitle
		}
		return models.InternshipProgram{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.InternshipProgram, error) {
	var p models.InternshipProgram
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InternshipProgram{}, ErrNotFound
	}
	if err != nil {
		return models.InternshipProgram{}, err
	}
	return p, nil
}

// List returns every program ordered by title (binary, ascending).
func (s *Store) List(ctx context.Context) ([]models.InternshipProgram, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	programs := []models.InternshipProgram{}
	if err := cur.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// Update replaces the mutable fields with those of p and returns the stored result.
// The caller merges partial input onto the existing record and validates it first.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.InternshipProgram) (models.InternshipProgram, error) {
	set := bson.M{
		"title":       p.Title,
		"description": p.Description,
		"category":    p.Category,
		"is_active":   p.IsActive,
		"updated_at":  time.Now().UTC(),
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out models.InternshipProgram
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InternshipProgram{}, ErrNotFound
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.InternshipProgram{}, ErrDuplicateTitle
		}
		return models.InternshipProgram{}, err
	}
	return out, nil
}

// Delete removes a program by ID.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
