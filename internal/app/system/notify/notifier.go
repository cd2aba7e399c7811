// internal/app/system/notify/notifier.go
package notify

import (
	"context"
	"fmt"

	"github.com/dalemusser/placementhub/internal/app/system/mailer"
	"github.com/dalemusser/placementhub/internal/app/system/metrics"
	"github.com/dalemusser/placementhub/internal/domain/models"
	"go.uber.org/zap"
)

// Template names used in logs and metric labels.
const (
	TemplateConfirmation = "confirmation"
	TemplateAdminAlert   = "admin_alert"
	TemplateAcceptance   = "acceptance"
)

// Notifier sends the application emails through a Dispatcher so that
// HTTP handlers return before delivery completes.
type Notifier struct {
	sender      mailer.Sender
	dispatch    *Dispatcher
	adminEmail  string
	frontendURL string
	log         *zap.Logger
}

// New creates a Notifier. adminEmail receives new-application alerts; when it
// is empty those alerts are skipped.
func New(sender mailer.Sender, dispatch *Dispatcher, adminEmail, frontendURL string, logger *zap.Logger) *Notifier {
	return &Notifier{
		sender:      sender,
		dispatch:    dispatch,
		adminEmail:  adminEmail,
		frontendURL: frontendURL,
		log:         logger,
	}
}

// ApplicationSubmitted queues the applicant confirmation and the admin alert.
func (n *Notifier) ApplicationSubmitted(app models.InternshipApplication) {
	confirmation := mailer.BuildConfirmationEmail(app.Email, mailer.ApplicantEmailData{
		FirstName: app.FirstName,
		Program:   app.Program,
	})
	n.dispatch.Go(TemplateConfirmation, func(ctx context.Context) error {
		return n.deliver(ctx, TemplateConfirmation, confirmation)
	})

	if n.adminEmail == "" {
		n.log.Warn("admin email not configured, skipping new application alert",
			zap.String("application_id", app.ID.Hex()))
		return
	}
	alert := mailer.BuildAdminAlertEmail(n.adminEmail, mailer.AdminAlertData{
		FirstName:    app.FirstName,
		LastName:     app.LastName,
		Email:        app.Email,
		Program:      app.Program,
		Age:          app.Age,
		DashboardURL: mailer.DashboardURL(n.frontendURL),
	})
	n.dispatch.Go(TemplateAdminAlert, func(ctx context.Context) error {
		return n.deliver(ctx, TemplateAdminAlert, alert)
	})
}

// ApplicationAccepted queues the acceptance email.
func (n *Notifier) ApplicationAccepted(app models.InternshipApplication) {
	e := mailer.BuildAcceptanceEmail(app.Email, mailer.ApplicantEmailData{
		FirstName: app.FirstName,
		Program:   app.Program,
	})
	n.dispatch.Go(TemplateAcceptance, func(ctx context.Context) error {
		return n.deliver(ctx, TemplateAcceptance, e)
	})
}

func (n *Notifier) deliver(ctx context.Context, template string, e mailer.Email) error {
	id, err := n.sender.Send(ctx, e)
	if err != nil {
		metrics.NotificationsFailed.WithLabelValues(template).Inc()
		return fmt.Errorf("send %s email to %s: %w", template, e.To, err)
	}
	metrics.NotificationsSent.WithLabelValues(template).Inc()
	n.log.Info("email sent",
		zap.String("template", template),
		zap.String("to", e.To),
		zap.String("message_id", id))
	return nil
}
