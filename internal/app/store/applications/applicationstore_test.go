package applicationstore_test

import (
	"errors"
	"testing"
	"time"

	applicationstore "github.com/dalemusser/placementhub/internal/app/store/applications"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"github.com/dalemusser/placementhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newApplication() models.InternshipApplication {
	return models.InternshipApplication{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Age:       30,
		Program:   "Compilers",
		CVPath:    "uploads/cvs/cv-1700000000000-42.pdf",
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newApplication())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Status != models.StatusPending {
		t.Errorf("expected status %q, got %q", models.StatusPending, created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Email != "grace@example.com" || got.Program != "Compilers" || got.CVPath == "" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, applicationstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().Add(-time.Hour)
	old := fx.CreateApplication(ctx, "old@example.com", base)
	newest := fx.CreateApplication(ctx, "newest@example.com", base.Add(20*time.Minute))
	mid := fx.CreateApplication(ctx, "mid@example.com", base.Add(10*time.Minute))

	apps, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []primitive.ObjectID{newest.ID, mid.ID, old.ID}
	if len(apps) != len(want) {
		t.Fatalf("expected %d applications, got %d", len(want), len(apps))
	}
	for i, id := range want {
		if apps[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, apps[i].Email, id.Hex())
		}
	}
}

func TestStore_List_EmptyIsNotNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	apps, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if apps == nil || len(apps) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", apps)
	}
}

func TestStore_UpdateStatus_Partial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newApplication())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := models.StatusInterviewScheduled
	link := "https://meet.example.com/abc"
	when := time.Date(2026, 11, 2, 15, 0, 0, 0, time.UTC)
	updated, err := store.UpdateStatus(ctx, created.ID, applicationstore.StatusUpdate{
		Status:        &status,
		InterviewLink: &link,
		InterviewDate: &when,
	})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != status || updated.InterviewLink != link {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.InterviewDate == nil || !updated.InterviewDate.Equal(when) {
		t.Errorf("interview date: got %v, want %v", updated.InterviewDate, when)
	}
	if updated.FirstName != "Grace" || updated.CVPath != created.CVPath {
		t.Error("untouched fields should be preserved")
	}

	// Feedback only: status stays as it was.
	feedback := "Strong portfolio"
	updated, err = store.UpdateStatus(ctx, created.ID, applicationstore.StatusUpdate{AdminFeedback: &feedback, ClearInterviewDate: true})
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != status || updated.AdminFeedback != feedback {
		t.Errorf("unexpected update result: %+v", updated)
	}
	if updated.InterviewDate != nil {
		t.Errorf("expected interview date cleared, got %v", updated.InterviewDate)
	}
}

func TestStore_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	status := models.StatusReviewed
	_, err := store.UpdateStatus(ctx, primitive.NewObjectID(), applicationstore.StatusUpdate{Status: &status})
	if !errors.Is(err, applicationstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newApplication())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted.CVPath != created.CVPath {
		t.Errorf("expected deleted record to be returned, got %+v", deleted)
	}

	if _, err := store.Delete(ctx, created.ID); !errors.Is(err, applicationstore.ErrNotFound) {
		t.Errorf("second Delete: expected ErrNotFound, got %v", err)
	}
}
