package testutil

import (
	"context"
	"testing"
	"time"

	applicationstore "github.com/dalemusser/placementhub/internal/app/store/applications"
	programstore "github.com/dalemusser/placementhub/internal/app/store/programs"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data directly in MongoDB.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateApplication inserts a pending application with the given email and
// creation time. Other fields get valid placeholder values.
func (f *Fixtures) CreateApplication(ctx context.Context, email string, createdAt time.Time) models.InternshipApplication {
	f.t.Helper()

	app := models.InternshipApplication{
		ID:        primitive.NewObjectID(),
		FirstName: "Test",
		LastName:  "Applicant",
		Email:     email,
		Age:       21,
		Program:   "Backend Engineering",
		CVPath:    "uploads/cvs/cv-0-0.pdf",
		Status:    models.StatusPending,
		CreatedAt: createdAt.UTC(),
		UpdatedAt: createdAt.UTC(),
	}
	if _, err := f.db.Collection(applicationstore.Collection).InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

// CreateProgram inserts an active program with the given title.
func (f *Fixtures) CreateProgram(ctx context.Context, title string) models.InternshipProgram {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.InternshipProgram{
		ID:        primitive.NewObjectID(),
		Title:     title,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection(programstore.Collection).InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	return p
}
