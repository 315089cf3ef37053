package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"aidbridge/internal/config"
)

type EmailService interface {
	SendStatusEmail(ctx context.Context, toEmail, name, itemTitle, status string) error
}

type emailService struct {
	client *resend.Client
	cfg    *config.Config
}

// NewEmailService returns nil when no API key is configured; callers
// treat a nil service as "email disabled".
func NewEmailService(cfg *config.Config) EmailService {
	if cfg.ResendAPIKey == "" {
		return nil
	}
	return &emailService{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *emailService) SendStatusEmail(ctx context.Context, toEmail, name, itemTitle, status string) error {
	html := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your item <strong>%s</strong> is now <strong>%s</strong>.</p><p>The AidBridge Team</p>`,
		name, itemTitle, status,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("AidBridge <%s>", s.cfg.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: fmt.Sprintf("Update on %q", itemTitle),
	}

	_, err := s.client.Emails.Send(params)
	return err
}
