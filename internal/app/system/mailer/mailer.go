// internal/app/system/mailer/mailer.go
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
)

// Transport names accepted in Config.Transport.
const (
	TransportSMTP = "smtp"
	TransportSES  = "ses"
	TransportLog  = "log"
)

// Email is one outbound message. From is filled in by the Sender from its
// configured address; FromName is the display name for that address.
type Email struct {
	To       string
	FromName string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers emails. Implementations are safe for concurrent use.
type Sender interface {
	// Send delivers e and returns the message identifier assigned to it.
	Send(ctx context.Context, e Email) (string, error)
	// Verify checks that the transport is reachable and accepts our credentials.
	Verify(ctx context.Context) error
}

// Config selects and configures a transport.
type Config struct {
	Transport string // smtp, ses or log

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	SESRegion string

	From string // envelope/header sender address
}

// ErrUnknownTransport is returned by New for an unrecognised Config.Transport.
var ErrUnknownTransport = errors.New("unknown mail transport")

// New builds the Sender named by cfg.Transport.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case "", TransportSMTP:
		return NewSMTP(cfg), nil
	case TransportSES:
		return NewSES(ctx, cfg.SESRegion, cfg.From)
	case TransportLog:
		return NewLog(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}

// formatAddress renders `"Name" <addr>`, or just addr when name is empty.
func formatAddress(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}
