package mailer

import (
	"strings"
	"testing"
)

func TestBuildConfirmationEmail(t *testing.T) {
	e := BuildConfirmationEmail("ada@example.com", ApplicantEmailData{FirstName: "Ada", Program: "Backend"})

	if e.To != "ada@example.com" {
		t.Errorf("To = %q", e.To)
	}
	if e.Subject != "Application Received - Placement Hub" {
		t.Errorf("Subject = %q", e.Subject)
	}
	if e.FromName != "Placement Hub" {
		t.Errorf("FromName = %q", e.FromName)
	}
	if !strings.Contains(e.HTMLBody, "Hello Ada!") || !strings.Contains(e.HTMLBody, "<strong>Backend</strong>") {
		t.Errorf("HTMLBody missing applicant data: %s", e.HTMLBody)
	}
	if !strings.Contains(e.TextBody, "Backend") {
		t.Errorf("TextBody missing program: %s", e.TextBody)
	}
}

func TestBuildAdminAlertEmail(t *testing.T) {
	e := BuildAdminAlertEmail("admin@example.com", AdminAlertData{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		Program:      "Backend",
		Age:          21,
		DashboardURL: DashboardURL("https://hub.example.com/"),
	})

	if e.Subject != "New Internship Application Submitted" || e.FromName != "Placement Hub System" {
		t.Errorf("unexpected headers: %q / %q", e.Subject, e.FromName)
	}
	for _, want := range []string{"Ada Lovelace", "ada@example.com", "Backend", "21", `href="https://hub.example.com/admin/internship"`} {
		if !strings.Contains(e.HTMLBody, want) {
			t.Errorf("HTMLBody missing %q", want)
		}
	}
}

func TestBuildAcceptanceEmail(t *testing.T) {
	e := BuildAcceptanceEmail("ada@example.com", ApplicantEmailData{FirstName: "Ada", Program: "Backend"})

	if e.Subject != "Congratulations! Your Internship Application was Accepted" {
		t.Errorf("Subject = %q", e.Subject)
	}
	if e.FromName != "Placement Hub Admissions" {
		t.Errorf("FromName = %q", e.FromName)
	}
	if !strings.Contains(e.HTMLBody, "Congratulations Ada!") {
		t.Errorf("HTMLBody missing greeting")
	}
}

func TestTemplates_EscapeApplicantInput(t *testing.T) {
	e := BuildConfirmationEmail("x@example.com", ApplicantEmailData{FirstName: "<script>alert(1)</script>", Program: "P"})
	if strings.Contains(e.HTMLBody, "<script>") {
		t.Errorf("HTMLBody was not escaped: %s", e.HTMLBody)
	}
}

func TestDashboardURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"http://localhost:5173", "http://localhost:5173/admin/internship"},
		{"http://localhost:5173/", "http://localhost:5173/admin/internship"},
	}
	for _, tt := range tests {
		if got := DashboardURL(tt.in); got != tt.want {
			t.Errorf("DashboardURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
