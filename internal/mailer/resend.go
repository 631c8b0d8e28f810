package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/nousrire/backend/internal/logger"
	"github.com/nousrire/backend/internal/service"
)

const subject = "Nous'Rire — Bénévolat"

// ResendMailer sends notification emails through the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
}

var _ service.Mailer = (*ResendMailer)(nil)

func New(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Send(ctx context.Context, toEmail, toName, message, replyTo string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: subject,
		Text:    message,
	}
	if replyTo != "" {
		params.ReplyTo = replyTo
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		logger.Log.Error("resend send failed", "to", toEmail, "error", err)
		return fmt.Errorf("resend send failed: %w", err)
	}

	logger.Log.Info("notification email sent", "to", toEmail, "name", toName, "message_id", sent.Id)
	return nil
}
