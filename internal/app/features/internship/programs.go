// internal/app/features/internship/programs.go
package internship

import (
	"context"
	"errors"
	"net/http"

	apierrors "github.com/dalemusser/placementhub/internal/app/features/errors"
	programstore "github.com/dalemusser/placementhub/internal/app/store/programs"
	"github.com/dalemusser/placementhub/internal/app/system/inputval"
	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.uber.org/zap"
)

// ServePrograms returns every program ordered by title.
//
// Route: GET /programs/all
func (h *Handler) ServePrograms(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	programs, err := h.Programs.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list programs failed", err)
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, programs)
}

// HandleCreateProgram creates a program. isActive defaults to true.
//
// Route: POST /programs
func (h *Handler) HandleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p := models.InternshipProgram{IsActive: true}
	req.apply(&p)
	p.Normalize()

	if res := inputval.Validate(p); res.HasErrors() {
		apierrors.Validation(w, res.Messages())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Programs.Create(ctx, p)
	if errors.Is(err, programstore.ErrDuplicateTitle) {
		apierrors.BadRequest(w, msgDuplicateTitle)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "create program failed", err, zap.String("title", p.Title))
		return
	}
	apierrors.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdateProgram applies a partial update to a program.
//
// Route: PATCH /programs/{id}
func (h *Handler) HandleUpdateProgram(w http.ResponseWriter, r *http.Request) {
	oid, ok := pathID(r)
	if !ok {
		apierrors.NotFound(w, msgProgramNotFound)
		return
	}

	var req programRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Programs.GetByID(ctx, oid)
	if errors.Is(err, programstore.ErrNotFound) {
		apierrors.NotFound(w, msgProgramNotFound)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load program failed", err, zap.String("program_id", oid.Hex()))
		return
	}

	req.apply(&p)
	p.Normalize()
	if res := inputval.Validate(p); res.HasErrors() {
		apierrors.Validation(w, res.Messages())
		return
	}

	updated, err := h.Programs.Update(ctx, oid, p)
	switch {
	case errors.Is(err, programstore.ErrDuplicateTitle):
		apierrors.BadRequest(w, msgDuplicateTitle)
	case errors.Is(err, programstore.ErrNotFound):
		apierrors.NotFound(w, msgProgramNotFound)
	case err != nil:
		h.ErrLog.ServerError(w, r, "update program failed", err, zap.String("program_id", oid.Hex()))
	default:
		apierrors.WriteJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteProgram removes a program. Applications naming it are untouched.
//
// Route: DELETE /programs/{id}
func (h *Handler) HandleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	oid, ok := pathID(r)
	if !ok {
		apierrors.NotFound(w, msgProgramNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Programs.Delete(ctx, oid)
	if errors.Is(err, programstore.ErrNotFound) {
		apierrors.NotFound(w, msgProgramNotFound)
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete program failed", err, zap.String("program_id", oid.Hex()))
		return
	}
	apierrors.WriteJSON(w, http.StatusOK, messageResponse{Message: msgProgramDeleted})
}
