// internal/app/features/internship/applications.go
package internship

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	applicationstore "github.com/dalemusser/placementhub/internal/app/store/applications"
	"github.com/dalemusser/placementhub/internal/app/system/inputval"
	"github.com/dalemusser/placementhub/internal/app/system/metrics"
	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.uber.org/zap"
)

// ServeList returns every application, newest first.
//
// Route: GET /
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	apps, err := h.Apps.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list applications failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, apps)
}

// ServeApplication returns one application.
//
// Route: GET /{id}
func (h *Handler) ServeApplication(w http.ResponseWriter, r *http.Request) {
	oid, ok := pathID(r)
	if !ok {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := h.Apps.GetByID(ctx, oid)
	if errors.Is(err, applicationstore.ErrNotFound) {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "get application failed", err, zap.String("application_id", oid.Hex()))
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, app)
}

// HandleUpdateStatus applies a partial update of the admin-managed fields.
// Moving an application to accepted queues the acceptance email.
//
// Route: PATCH /{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := pathID(r)
	if !ok {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}

	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var upd applicationstore.StatusUpdate
	if req.Status != nil && *req.Status != "" {
		if !models.IsValidStatus(*req.Status) {
			apierrors.BadRequest(w, msgInvalidStatus)
			return
		}
		upd.Status = req.Status
	}
	if req.AdminFeedback != nil {
		fb := strings.TrimSpace(*req.AdminFeedback)
		upd.AdminFeedback = &fb
	}
	if req.InterviewLink != nil {
		link := strings.TrimSpace(*req.InterviewLink)
		upd.InterviewLink = &link
	}
	date, unset, err := parseInterviewDate(req.InterviewDate)
	if err != nil {
		apierrors.BadRequest(w, msgInvalidDate)
		return
	}
	upd.InterviewDate = date
	upd.ClearInterviewDate = unset

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	current, err := h.Apps.GetByID(ctx, oid)
	if errors.Is(err, applicationstore.ErrNotFound) {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load application for status update failed", err, zap.String("application_id", oid.Hex()))
		return
	}

	// Validate the record as it will look after the update.
	merged := current
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.AdminFeedback != nil {
		merged.AdminFeedback = *upd.AdminFeedback
	}
	if upd.InterviewLink != nil {
		merged.InterviewLink = *upd.InterviewLink
	}
	if res := inputval.Validate(merged); res.HasErrors() {
		apierrors.Validation(w, res.Messages())
		return
	}

	updated, err := h.Apps.UpdateStatus(ctx, oid, upd)
	if errors.Is(err, applicationstore.ErrNotFound) {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "update application status failed", err, zap.String("application_id", oid.Hex()))
		return
	}

	if upd.Status != nil {
		metrics.StatusChanges.WithLabelValues(*upd.Status).Inc()
		if *upd.Status == models.StatusAccepted {
			h.Notify.ApplicationAccepted(updated)
		}
	}

	apierrors.WriteJSON(w, http.StatusOK, statusResponse{
		Message:     msgStatusUpdated,
		Application: updated,
	})
}

// HandleDelete removes an application and its CV file.
//
// Route: DELETE /{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := pathID(r)
	if !ok {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	removed, err := h.Apps.Delete(ctx, oid)
	if errors.Is(err, applicationstore.ErrNotFound) {
		apierrors.NotFound(w, msgApplicationNotFound)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete application failed", err, zap.String("application_id", oid.Hex()))
		return
	}

	h.discardCV(removed.CVPath)

	apierrors.WriteJSON(w, http.StatusOK, messageResponse{Message: msgApplicationDeleted})
}
