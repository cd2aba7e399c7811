// internal/domain/models/internshipapplication.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application status identifiers stored in InternshipApplication.Status.
const (
	StatusPending            = "pending"
	StatusReviewed           = "reviewed"
	StatusInterviewScheduled = "interview_scheduled"
	StatusAccepted           = "accepted"
	StatusRejected           = "rejected"
)

// ApplicationStatuses is the full set of allowed status values, in workflow order.
// It is the single source of truth for validation and the collection schema enum.
var ApplicationStatuses = []string{
	StatusPending,
	StatusReviewed,
	StatusInterviewScheduled,
	StatusAccepted,
	StatusRejected,
}

// IsValidStatus reports whether s is one of ApplicationStatuses (exact match).
func IsValidStatus(s string) bool {
	for _, v := range ApplicationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// InternshipApplication is one submitted application.
//
// CVPath is set by the upload middleware and never taken from client input.
// Only the status endpoint mutates a stored application (status, feedback and
// interview fields).
type InternshipApplication struct {
	ID primitive.ObjectID `bson:"_id" json:"_id"`

	FirstName string `bson:"first_name" json:"firstName" validate:"required,min=2" label:"First name" msg:"required=First name is strictly required;min=First name must be at least 2 characters long"`
	LastName  string `bson:"last_name" json:"lastName" validate:"required,min=2" label:"Last name" msg:"required=Last name is strictly required;min=Last name must be at least 2 characters long"`
	Email     string `bson:"email" json:"email" validate:"required,applicantemail" label:"Email" msg:"required=Email address is strictly required;applicantemail=Please provide a valid email address"`
	Age       int    `bson:"age" json:"age" validate:"min=16,max=100" label:"Age" msg:"min=Applicants must be at least 16 years old;max=Please provide a valid age"`
	Program   string `bson:"program" json:"program" validate:"required" label:"Program" msg:"required=Internship program selection is required"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty" validate:"max=1000" label:"Notes" msg:"max=Notes cannot exceed 1000 characters"`
	CVPath    string `bson:"cv_path" json:"cvPath" validate:"required" label:"CV path" msg:"required=CV file path is missing - check upload logic"`

	Status        string     `bson:"status" json:"status" validate:"applicationstatus" label:"Status" msg:"applicationstatus={VALUE} is not a valid status"`
	InterviewDate *time.Time `bson:"interview_date,omitempty" json:"interviewDate,omitempty"`
	InterviewLink string     `bson:"interview_link,omitempty" json:"interviewLink,omitempty"`
	AdminFeedback string     `bson:"admin_feedback,omitempty" json:"adminFeedback,omitempty" validate:"max=2000" label:"Admin feedback" msg:"max=Admin feedback cannot exceed 2000 characters"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Normalize applies the trimming and case rules for stored values.
// Status defaults to pending when unset.
func (a *InternshipApplication) Normalize() {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Program = strings.TrimSpace(a.Program)
	a.Notes = strings.TrimSpace(a.Notes)
	a.InterviewLink = strings.TrimSpace(a.InterviewLink)
	a.AdminFeedback = strings.TrimSpace(a.AdminFeedback)
	if a.Status == "" {
		a.Status = StatusPending
	}
}
