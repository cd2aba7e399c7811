// internal/app/features/internship/apply.go
package internship

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	"github.com/dalemusser/placementhub/internal/app/system/inputval"
	"github.com/dalemusser/placementhub/internal/app/system/metrics"
	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	"github.com/dalemusser/placementhub/internal/app/system/uploads"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.uber.org/zap"
)

// HandleApply stores a new application submitted with its CV.
//
// Route: POST /apply (multipart; the upload middleware has already stored the cv file)
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	cvPath := uploads.PathFrom(r.Context())

	firstName := r.FormValue("firstName")
	lastName := r.FormValue("lastName")
	email := r.FormValue("email")
	ageRaw := strings.TrimSpace(r.FormValue("age"))
	program := r.FormValue("program")

	var missing []string
	if firstName == "" {
		missing = append(missing, msgFirstNameMissing)
	}
	if lastName == "" {
		missing = append(missing, msgLastNameMissing)
	}
	if email == "" {
		missing = append(missing, msgEmailMissing)
	}
	age, ageErr := strconv.Atoi(ageRaw)
	if ageErr != nil {
		missing = append(missing, msgAgeInvalid)
	}
	if program == "" {
		missing = append(missing, msgProgramMissing)
	}
	if cvPath == "" {
		missing = append(missing, msgCVMissing)
	}
	if len(missing) > 0 {
		h.discardCV(cvPath)
		metrics.ApplicationsRejectedInput.WithLabelValues("presence").Inc()
		apierrors.Validation(w, missing)
		return
	}

	app := models.InternshipApplication{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       age,
		Program:   program,
		Notes:     r.FormValue("notes"),
		CVPath:    cvPath,
		Status:    models.StatusPending,
	}
	app.Normalize()

	if res := inputval.Validate(app); res.HasErrors() {
		h.discardCV(cvPath)
		metrics.ApplicationsRejectedInput.WithLabelValues("validation").Inc()
		apierrors.Validation(w, res.Messages())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	saved, err := h.Apps.Create(ctx, app)
	if err != nil {
		h.discardCV(cvPath)
		h.ErrLog.ServerError(w, r, "create application failed", err, zap.String("email", app.Email))
		return
	}
	metrics.ApplicationsSubmitted.Inc()

	h.Notify.ApplicationSubmitted(saved)

	h.Log.Info("application submitted",
		zap.String("application_id", saved.ID.Hex()),
		zap.String("program", saved.Program))

	apierrors.WriteJSON(w, http.StatusCreated, applyResponse{
		Message:       msgApplicationSubmitted,
		ApplicationID: saved.ID.Hex(),
	})
}

// discardCV removes a stored CV file. Failures are logged only.
func (h *Handler) discardCV(cvPath string) {
	if cvPath == "" {
		return
	}
	if err := h.CVs.Remove(cvPath); err != nil {
		h.Log.Warn("could not remove cv file", zap.String("cv_path", cvPath), zap.Error(err))
	}
}
