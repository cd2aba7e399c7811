// internal/app/features/internship/routes.go
package internship

import (
	"net/http"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	"github.com/dalemusser/placementhub/internal/app/system/metrics"
	"github.com/dalemusser/placementhub/internal/app/system/ratelimit"
	"github.com/dalemusser/placementhub/internal/app/system/uploads"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the internship API (typically under "/api/internship").
// applyLimit may be nil to disable rate limiting of submissions.
//
// The admin routes are not protected; access control is expected in front
// of this service.
func Routes(h *Handler, applyLimit *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	// Public submission
	r.Group(func(pr chi.Router) {
		if applyLimit != nil {
			pr.Use(applyLimit.Middleware(h.tooManyRequests))
		}
		pr.Use(h.CVs.Middleware(h.uploadFailed))
		pr.Post("/apply", h.HandleApply)
	})

	// Programs (registered before /{id} so "programs" is never taken for an id)
	r.Get("/programs/all", h.ServePrograms)
	r.Post("/programs", h.HandleCreateProgram)
	r.Patch("/programs/{id}", h.HandleUpdateProgram)
	r.Delete("/programs/{id}", h.HandleDeleteProgram)

	// Applications
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeApplication)
	r.Patch("/{id}/status", h.HandleUpdateStatus)
	r.Delete("/{id}", h.HandleDelete)

	return r
}

func (h *Handler) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	apierrors.Write(w, http.StatusTooManyRequests, msgTooManyRequests)
}

func (h *Handler) uploadFailed(w http.ResponseWriter, r *http.Request, err error) {
	if msg, ok := uploads.ClientMessage(err); ok {
		metrics.ApplicationsRejectedInput.WithLabelValues("upload").Inc()
		apierrors.BadRequest(w, msg)
		return
	}
	h.ErrLog.ServerError(w, r, "cv upload failed", err)
}
