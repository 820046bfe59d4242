package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/linesmerrill/devcamper-api/templates/html"
)

// Message is a single email
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers emails
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SendGrid delivers emails through the SendGrid api
type SendGrid struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewSendGrid returns a SendGrid mailer sending as fromName <fromEmail>
func NewSendGrid(apiKey, fromName, fromEmail string) *SendGrid {
	return &SendGrid{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
	}
}

// Send delivers msg. Plain text messages are wrapped in the generic layout.
// Any status of 400 and above is an error.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if msg.HTML == "" {
		msg.HTML = templates.RenderGenericEmail(msg.Subject, msg.Text)
	}
	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	message := mail.NewSingleEmail(s.from, msg.Subject, to, msg.Text, msg.HTML)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		zap.S().Errorw("failed to send email", "error", err, "to", msg.ToEmail)
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.ToEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	zap.S().Infow("email sent", "to", msg.ToEmail, "subject", msg.Subject)
	return nil
}
