// internal/app/system/mailer/smtp.go
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	gomail "github.com/wneessen/go-mail"
)

// SMTP sends through an SMTP relay. A fresh connection is dialled per send,
// so one SMTP value can be shared across goroutines.
type SMTP struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTP returns an SMTP sender. Authentication is used only when a user is set.
func NewSMTP(cfg Config) *SMTP {
	return &SMTP{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.From,
	}
}

func (s *SMTP) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(timeouts.Send()),
	}
	if s.user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.user),
			gomail.WithPassword(s.pass),
		)
	}
	return gomail.NewClient(s.host, opts...)
}

// Send implements Sender.
func (s *SMTP) Send(ctx context.Context, e Email) (string, error) {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(e.FromName, s.from); err != nil {
		return "", fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(e.To); err != nil {
		return "", fmt.Errorf("to address: %w", err)
	}
	msg.Subject(e.Subject)
	msg.SetMessageID()
	if e.TextBody != "" {
		msg.SetBodyString(gomail.TypeTextPlain, e.TextBody)
		msg.AddAlternativeString(gomail.TypeTextHTML, e.HTMLBody)
	} else {
		msg.SetBodyString(gomail.TypeTextHTML, e.HTMLBody)
	}

	c, err := s.client()
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return strings.Join(msg.GetGenHeader(gomail.HeaderMessageID), ","), nil
}

// Verify dials the relay (including STARTTLS and auth when configured) and hangs up.
func (s *SMTP) Verify(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp dial %s:%d: %w", s.host, s.port, err)
	}
	return c.Close()
}
