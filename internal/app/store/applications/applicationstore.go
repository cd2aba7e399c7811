// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the MongoDB collection holding applications.
const Collection = "internship_applications"

// ErrNotFound is returned when no application has the requested ID.
var ErrNotFound = errors.New("application not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create stores a new application. The caller is expected to have validated it;
// ID, status default and timestamps are assigned here.
func (s *Store) Create(ctx context.Context, app models.InternshipApplication) (models.InternshipApplication, error) {
	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	app.CreatedAt = now
	app.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, app); err != nil {
		return models.InternshipApplication{}, err
	}
	return app, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.InternshipApplication, error) {
	var app models.InternshipApplication
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InternshipApplication{}, ErrNotFound
	}
	if err != nil {
		return models.InternshipApplication{}, err
	}
	return app, nil
}

// List returns every application, newest first.
func (s *Store) List(ctx context.Context) ([]models.InternshipApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	apps := []models.InternshipApplication{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// StatusUpdate carries the admin-editable fields. Nil pointers are left untouched.
// ClearInterviewDate removes a previously scheduled interview date.
type StatusUpdate struct {
	Status             *string
	AdminFeedback      *string
	InterviewDate      *time.Time
	ClearInterviewDate bool
	InterviewLink      *string
}

// UpdateStatus applies upd and returns the application as stored afterwards.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, upd StatusUpdate) (models.InternshipApplication, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.AdminFeedback != nil {
		set["admin_feedback"] = *upd.AdminFeedback
	}
	if upd.InterviewLink != nil {
		set["interview_link"] = *upd.InterviewLink
	}
	if upd.InterviewDate != nil {
		set["interview_date"] = upd.InterviewDate.UTC()
	}

	update := bson.M{"$set": set}
	if upd.ClearInterviewDate && upd.InterviewDate == nil {
		update["$unset"] = bson.M{"interview_date": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var app models.InternshipApplication
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InternshipApplication{}, ErrNotFound
	}
	if err != nil {
		return models.InternshipApplication{}, err
	}
	return app, nil
}

// Delete removes an application and returns the removed record so the caller
// can clean up its CV file.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.InternshipApplication, error) {
	var app models.InternshipApplication
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&app)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.InternshipApplication{}, ErrNotFound
	}
	if err != nil {
		return models.InternshipApplication{}, err
	}
	return app, nil
}
