// internal/app/features/internship/types.go
package internship

import (
	"encoding/json"

	"github.com/dalemusser/placementhub/internal/domain/models"
)

// Response messages.
const (
	msgApplicationSubmitted = "Application submitted successfully"
	msgStatusUpdated        = "Status updated successfully"
	msgApplicationDeleted   = "Application deleted successfully"
	msgProgramDeleted       = "Program deleted successfully"

	msgApplicationNotFound = "Application not found"
	msgProgramNotFound     = "Program not found"
	msgInvalidStatus       = "Invalid status"
	msgInvalidDate         = "Invalid interview date"
	msgDuplicateTitle      = "Program title already exists"
	msgInvalidJSON         = "Invalid JSON body"
	msgTooManyRequests     = "Too many requests"
)

// Presence messages for POST /apply, in reporting order.
const (
	msgFirstNameMissing = "First name is required"
	msgLastNameMissing  = "Last name is required"
	msgEmailMissing     = "Email is required"
	msgAgeInvalid       = "Age must be a valid number"
	msgProgramMissing   = "Program selection is required"
	msgCVMissing        = "CV file (PDF/DOC) is required"
)

type applyResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"applicationId"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Message     string                       `json:"message"`
	Application models.InternshipApplication `json:"application"`
}

// statusRequest is the PATCH /{id}/status body. Absent fields are left as stored.
// InterviewDate is kept raw so that an explicit null can clear the date.
type statusRequest struct {
	Status        *string         `json:"status"`
	AdminFeedback *string         `json:"adminFeedback"`
	InterviewDate json.RawMessage `json:"interviewDate"`
	InterviewLink *string         `json:"interviewLink"`
}

// programRequest is the body of program create and update requests.
type programRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

// apply copies the supplied fields onto p.
func (req programRequest) apply(p *models.InternshipProgram) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}
