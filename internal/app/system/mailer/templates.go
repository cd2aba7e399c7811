// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Subjects and sender display names for the three application emails.
const (
	ConfirmationSubject  = "Application Received - Placement Hub"
	ConfirmationFromName = "Placement Hub"

	AdminAlertSubject  = "New Internship Application Submitted"
	AdminAlertFromName = "Placement Hub System"

	AcceptanceSubject  = "Congratulations! Your Internship Application was Accepted"
	AcceptanceFromName = "Placement Hub Admissions"
)

// ApplicantEmailData holds data for the confirmation and acceptance emails.
type ApplicantEmailData struct {
	FirstName string
	Program   string
}

// AdminAlertData holds data for the new-application admin alert.
type AdminAlertData struct {
	FirstName    string
	LastName     string
	Email        string
	Program      string
	Age          int
	DashboardURL string
}

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTMLTemplate))
	adminAlertTmpl   = template.Must(template.New("admin_alert").Parse(adminAlertHTMLTemplate))
	acceptanceTmpl   = template.Must(template.New("acceptance").Parse(acceptanceHTMLTemplate))
)

// DashboardURL returns the admin dashboard link for frontendURL.
func DashboardURL(frontendURL string) string {
	return strings.TrimRight(frontendURL, "/") + "/admin/internship"
}

// BuildConfirmationEmail creates the "application received" email sent to the applicant.
func BuildConfirmationEmail(to string, data ApplicantEmailData) Email {
	return Email{
		To:       to,
		FromName: ConfirmationFromName,
		Subject:  ConfirmationSubject,
		TextBody: fmt.Sprintf("Hello %s!\n\nThank you for applying for the %s at Placement Hub.\n\n"+
			"We have successfully received your application and CV. Our admissions team will review "+
			"your profile and get back to you within 48 hours.\n\n"+
			"This is an automated message, please do not reply directly to this email.\n",
			data.FirstName, data.Program),
		HTMLBody: render(confirmationTmpl, data),
	}
}

// BuildAdminAlertEmail creates the alert sent to the admissions inbox.
func BuildAdminAlertEmail(to string, data AdminAlertData) Email {
	var text bytes.Buffer
	text.WriteString("New Application Alert\n\nA new candidate has just applied for an internship.\n\n")
	text.WriteString(fmt.Sprintf("Name: %s %s\n", data.FirstName, data.LastName))
	text.WriteString(fmt.Sprintf("Email: %s\n", data.Email))
	text.WriteString(fmt.Sprintf("Program: %s\n", data.Program))
	text.WriteString(fmt.Sprintf("Age: %d\n\n", data.Age))
	text.WriteString("View in Dashboard: " + data.DashboardURL + "\n")

	return Email{
		To:       to,
		FromName: AdminAlertFromName,
		Subject:  AdminAlertSubject,
		TextBody: text.String(),
		HTMLBody: render(adminAlertTmpl, data),
	}
}

// BuildAcceptanceEmail creates the email sent when an application is accepted.
func BuildAcceptanceEmail(to string, data ApplicantEmailData) Email {
	return Email{
		To:       to,
		FromName: AcceptanceFromName,
		Subject:  AcceptanceSubject,
		TextBody: fmt.Sprintf("Congratulations %s!\n\nWe are thrilled to inform you that your application "+
			"for the %s has been ACCEPTED.\n\nOur team will reach out to you shortly with the next steps "+
			"regarding your onboarding and schedule.\n\nWelcome to the team!\n\nPlacement Hub Admissions Team\n",
			data.FirstName, data.Program),
		HTMLBody: render(acceptanceTmpl, data),
	}
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	_ = t.Execute(&buf, data)
	return buf.String()
}

const confirmationHTMLTemplate = `<div style="font-family: sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
  <h2 style="color: #2d1b4e;">Hello {{.FirstName}}!</h2>
  <p>Thank you for applying for the <strong>{{.Program}}</strong> at Placement Hub.</p>
  <p>We have successfully received your application and CV. Our admissions team will review your profile and get back to you within 48 hours.</p>
  <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;" />
  <p style="color: #666; font-size: 12px;">This is an automated message, please do not reply directly to this email.</p>
</div>`

const adminAlertHTMLTemplate = `<div style="font-family: sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
  <h2 style="color: #2d1b4e;">New Application Alert</h2>
  <p>A new candidate has just applied for an internship.</p>
  <ul>
    <li><strong>Name:</strong> {{.FirstName}} {{.LastName}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
    <li><strong>Program:</strong> {{.Program}}</li>
    <li><strong>Age:</strong> {{.Age}}</li>
  </ul>
  <p><a href="{{.DashboardURL}}" style="background: #2d1b4e; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">View in Dashboard</a></p>
</div>`

const acceptanceHTMLTemplate = `<div style="font-family: sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #eee; border-radius: 10px; border-top: 10px solid #ffc12b;">
  <h2 style="color: #2d1b4e;">Congratulations {{.FirstName}}!</h2>
  <p>We are thrilled to inform you that your application for the <strong>{{.Program}}</strong> has been <strong>ACCEPTED</strong>.</p>
  <p>Our team will reach out to you shortly with the next steps regarding your onboarding and schedule.</p>
  <p>Welcome to the team!</p>
  <hr style="border: 0; border-top: 1px solid #eee; margin: 20px 0;" />
  <p style="color: #666; font-size: 12px;">Placement Hub Admissions Team</p>
</div>`
