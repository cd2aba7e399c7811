// internal/app/features/internship/handler.go
package internship

import (
	"context"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	applicationstore "github.com/dalemusser/placementhub/internal/app/store/applications"
	"github.com/dalemusser/placementhub/internal/app/system/uploads"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ApplicationStore is the persistence used for applications.
// *applicationstore.Store satisfies it.
type ApplicationStore interface {
	Create(ctx context.Context, app models.InternshipApplication) (models.InternshipApplication, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.InternshipApplication, error)
	List(ctx context.Context) ([]models.InternshipApplication, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, upd applicationstore.StatusUpdate) (models.InternshipApplication, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.InternshipApplication, error)
}

// ProgramStore is the persistence used for programs.
// *programstore.Store satisfies it.
type ProgramStore interface {
	Create(ctx context.Context, p models.InternshipProgram) (models.InternshipProgram, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.InternshipProgram, error)
	List(ctx context.Context) ([]models.InternshipProgram, error)
	Update(ctx context.Context, id primitive.ObjectID, p models.InternshipProgram) (models.InternshipProgram, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// Notifier queues application emails without blocking the request.
// *notify.Notifier satisfies it.
type Notifier interface {
	ApplicationSubmitted(app models.InternshipApplication)
	ApplicationAccepted(app models.InternshipApplication)
}

// Handler is the feature-level entry point for internship applications and programs.
type Handler struct {
	Apps     ApplicationStore
	Programs ProgramStore
	CVs      *uploads.Store
	Notify   Notifier
	ErrLog   *apierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs the internship handler.
func NewHandler(apps ApplicationStore, programs ProgramStore, cvs *uploads.Store, notifier Notifier, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Apps:     apps,
		Programs: programs,
		CVs:      cvs,
		Notify:   notifier,
		ErrLog:   errLog,
		Log:      logger,
	}
}
