// utils/email.go
package utils

import (
	"fmt"

	"clothes-share/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailService handles sending transactional emails using SendGrid. All
// sends are fire-and-forget from the caller's perspective: a failure is
// logged, never surfaced to the user flow.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// With an empty API key the service is a logging no-op, which keeps local
// development working without credentials.
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" {
		logrus.Warn("SENDGRID_API_KEY is not set; emails will not be sent")
		return &EmailService{sender: sender}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		logrus.WithField("to", toEmail).Info("Email sending disabled; skipping")
		return nil
	}

	from := mail.NewEmail("ClothesShare", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user.
func (es *EmailService) SendWelcomeEmail(toEmail, name string, role models.Role) error {
	subject := "Welcome to ClothesShare"
	htmlContent := fmt.Sprintf(
		"<strong>Hi %s,</strong><br><br>Your %s account has been created. Welcome to our sustainable fashion community!",
		name, role,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendNGODecisionEmail notifies an NGO applicant of the moderation outcome.
func (es *EmailService) SendNGODecisionEmail(toEmail, ngoName string, status models.Status) error {
	var subject, body string
	if status == models.StatusApproved {
		subject = "NGO Verification Approved"
		body = fmt.Sprintf(
			"<strong>Dear %s,</strong><br><br>Your NGO has been verified. You can now access free donations on ClothesShare.",
			ngoName,
		)
	} else {
		subject = "NGO Verification Update"
		body = fmt.Sprintf(
			"<strong>Dear %s,</strong><br><br>Your verification request was not approved. Please contact support for more information.",
			ngoName,
		)
	}
	return es.SendEmail(toEmail, subject, body)
}
