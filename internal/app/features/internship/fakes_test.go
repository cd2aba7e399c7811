package internship

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	applicationstore "github.com/dalemusser/placementhub/internal/app/store/applications"
	programstore "github.com/dalemusser/placementhub/internal/app/store/programs"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeApps is an in-memory ApplicationStore with the same ordering and
// not-found behaviour as the Mongo store.
type fakeApps struct {
	mu   sync.Mutex
	apps map[primitive.ObjectID]models.InternshipApplication
	err  error // returned by every call when set
	now  time.Time
}

func newFakeApps() *fakeApps {
	return &fakeApps{
		apps: make(map[primitive.ObjectID]models.InternshipApplication),
		now:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeApps) Create(ctx context.Context, app models.InternshipApplication) (models.InternshipApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.InternshipApplication{}, f.err
	}
	f.now = f.now.Add(time.Second)
	app.ID = primitive.NewObjectID()
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	app.CreatedAt, app.UpdatedAt = f.now, f.now
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApps) GetByID(ctx context.Context, id primitive.ObjectID) (models.InternshipApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.InternshipApplication{}, f.err
	}
	app, ok := f.apps[id]
	if !ok {
		return models.InternshipApplication{}, applicationstore.ErrNotFound
	}
	return app, nil
}

func (f *fakeApps) List(ctx context.Context) ([]models.InternshipApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.InternshipApplication, 0, len(f.apps))
	for _, a := range f.apps {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeApps) UpdateStatus(ctx context.Context, id primitive.ObjectID, upd applicationstore.StatusUpdate) (models.InternshipApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.InternshipApplication{}, f.err
	}
	app, ok := f.apps[id]
	if !ok {
		return models.InternshipApplication{}, applicationstore.ErrNotFound
	}
	if upd.Status != nil {
		app.Status = *upd.Status
	}
	if upd.AdminFeedback != nil {
		app.AdminFeedback = *upd.AdminFeedback
	}
	if upd.InterviewLink != nil {
		app.InterviewLink = *upd.InterviewLink
	}
	if upd.InterviewDate != nil {
		d := *upd.InterviewDate
		app.InterviewDate = &d
	} else if upd.ClearInterviewDate {
		app.InterviewDate = nil
	}
	app.UpdatedAt = f.now
	f.apps[id] = app
	return app, nil
}

func (f *fakeApps) Delete(ctx context.Context, id primitive.ObjectID) (models.InternshipApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.InternshipApplication{}, f.err
	}
	app, ok := f.apps[id]
	if !ok {
		return models.InternshipApplication{}, applicationstore.ErrNotFound
	}
	delete(f.apps, id)
	return app, nil
}

// fakePrograms enforces title uniqueness like the unique index does.
type fakePrograms struct {
	mu       sync.Mutex
	programs map[primitive.ObjectID]models.InternshipProgram
}

func newFakePrograms() *fakePrograms {
	return &fakePrograms{programs: make(map[primitive.ObjectID]models.InternshipProgram)}
}

func (f *fakePrograms) titleTaken(title string, except primitive.ObjectID) bool {
	for id, p := range f.programs {
		if id != except && p.Title == title {
			return true
		}
	}
	return false
}

func (f *fakePrograms) Create(ctx context.Context, p models.InternshipProgram) (models.InternshipProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.titleTaken(p.Title, primitive.NilObjectID) {
		return models.InternshipProgram{}, programstore.ErrDuplicateTitle
	}
	p.ID = primitive.NewObjectID()
	f.programs[p.ID] = p
	return p, nil
}

func (f *fakePrograms) GetByID(ctx context.Context, id primitive.ObjectID) (models.InternshipProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.programs[id]
	if !ok {
		return models.InternshipProgram{}, programstore.ErrNotFound
	}
	return p, nil
}

func (f *fakePrograms) List(ctx context.Context) ([]models.InternshipProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.InternshipProgram, 0, len(f.programs))
	for _, p := range f.programs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakePrograms) Update(ctx context.Context, id primitive.ObjectID, p models.InternshipProgram) (models.InternshipProgram, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.programs[id]; !ok {
		return models.InternshipProgram{}, programstore.ErrNotFound
	}
	if f.titleTaken(p.Title, id) {
		return models.InternshipProgram{}, programstore.ErrDuplicateTitle
	}
	p.ID = id
	f.programs[id] = p
	return p, nil
}

func (f *fakePrograms) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.programs[id]; !ok {
		return programstore.ErrNotFound
	}
	delete(f.programs, id)
	return nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) ApplicationSubmitted(app models.InternshipApplication) {
	m.Called(app)
}

func (m *mockNotifier) ApplicationAccepted(app models.InternshipApplication) {
	m.Called(app)
}

var errBoom = errors.New("boom")
