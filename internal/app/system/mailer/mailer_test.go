package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"go.uber.org/zap"
)

func TestNew_SelectsTransport(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	s, err := New(ctx, Config{Transport: "log"}, logger)
	if err != nil {
		t.Fatalf("New(log): %v", err)
	}
	if _, ok := s.(*Log); !ok {
		t.Errorf("New(log) returned %T", s)
	}

	s, err = New(ctx, Config{Transport: "SMTP", SMTPHost: "localhost", SMTPPort: 587}, logger)
	if err != nil {
		t.Fatalf("New(smtp): %v", err)
	}
	if _, ok := s.(*SMTP); !ok {
		t.Errorf("New(smtp) returned %T", s)
	}

	if _, err := New(ctx, Config{Transport: "pigeon"}, logger); !errors.Is(err, ErrUnknownTransport) {
		t.Errorf("New(pigeon) err = %v, want ErrUnknownTransport", err)
	}
}

func TestLog_SendReturnsMessageID(t *testing.T) {
	l := NewLog(zap.NewNop())
	id, err := l.Send(context.Background(), Email{To: "a@example.com", Subject: "hi"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !strings.HasPrefix(id, "<") || !strings.HasSuffix(id, "@placementhub.local>") {
		t.Errorf("message id = %q", id)
	}
}

func TestFormatAddress(t *testing.T) {
	if got := formatAddress("", "a@example.com"); got != "a@example.com" {
		t.Errorf("formatAddress without name = %q", got)
	}
	if got := formatAddress("Placement Hub", "a@example.com"); got != `"Placement Hub" <a@example.com>` {
		t.Errorf("formatAddress with name = %q", got)
	}
}

type fakeSES struct {
	in  *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(ctx context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("ses-123")}, nil
}

func (f *fakeSES) GetSendQuota(ctx context.Context, in *ses.GetSendQuotaInput, _ ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error) {
	return &ses.GetSendQuotaOutput{}, f.err
}

func TestSES_Send(t *testing.T) {
	fake := &fakeSES{}
	s := &SES{client: fake, from: "noreply@example.com"}

	e := BuildAcceptanceEmail("ada@example.com", ApplicantEmailData{FirstName: "Ada", Program: "Backend"})
	id, err := s.Send(context.Background(), e)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if id != "ses-123" {
		t.Errorf("id = %q", id)
	}
	if got := aws.ToString(fake.in.Source); got != `"Placement Hub Admissions" <noreply@example.com>` {
		t.Errorf("Source = %q", got)
	}
	if got := fake.in.Destination.ToAddresses; len(got) != 1 || got[0] != "ada@example.com" {
		t.Errorf("ToAddresses = %v", got)
	}
	if got := aws.ToString(fake.in.Message.Subject.Data); got != AcceptanceSubject {
		t.Errorf("Subject = %q", got)
	}
	if fake.in.Message.Body.Text == nil || fake.in.Message.Body.Html == nil {
		t.Errorf("expected both text and html bodies")
	}
}

func TestSES_SendError(t *testing.T) {
	s := &SES{client: &fakeSES{err: errors.New("throttled")}, from: "noreply@example.com"}
	if _, err := s.Send(context.Background(), Email{To: "a@example.com"}); err == nil {
		t.Fatal("expected error")
	}
	if err := s.Verify(context.Background()); err == nil {
		t.Fatal("expected Verify error")
	}
}
