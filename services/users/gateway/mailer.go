package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/pkg/models"
	"github.com/piresc/spendly/internal/pkg/retry"
	"github.com/piresc/spendly/internal/utils"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const otpSubject = "Spendly Password Reset OTP"

// SendGridMailer sends account mail through the SendGrid v3 API
type SendGridMailer struct {
	client  *sendgrid.Client
	from    *mail.Email
	retrier *retry.Retrier
}

// NewSendGridMailer creates a mailer for cfg.SendGridAPIKey
func NewSendGridMailer(cfg models.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client:  sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:    mail.NewEmail(cfg.SenderName, cfg.SenderEmail),
		retrier: retry.NewWithDefaults(),
	}
}

// SendOTPEmail mails a password reset code
func (m *SendGridMailer) SendOTPEmail(ctx context.Context, email, name, code string, expiry time.Duration) error {
	minutes := int(expiry.Minutes())
	plain := fmt.Sprintf("Your OTP for password reset is: %s. Valid for %d minutes.", code, minutes)
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px;">
  <h2>Password Reset Request</h2>
  <p>Your One-Time Password (OTP) is:</p>
  <h1 style="color: #4F46E5; letter-spacing: 5px;">%s</h1>
  <p>This code is valid for %d minutes.</p>
  <p>If you didn't request this, please ignore this email.</p>
</div>`, code, minutes)

	message := mail.NewSingleEmail(m.from, otpSubject, mail.NewEmail(name, email), plain, html)

	var status int
	err := m.retrier.Do(ctx, "sendgrid send", func(ctx context.Context) error {
		response, err := m.client.SendWithContext(ctx, message)
		if err != nil {
			return err
		}
		status = response.StatusCode
		switch {
		case response.StatusCode >= 500:
			return fmt.Errorf("sendgrid unavailable: status %d", response.StatusCode)
		case response.StatusCode >= 300:
			return retry.Permanent(fmt.Errorf("sendgrid rejected OTP email: status %d: %s", response.StatusCode, response.Body))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.Info("OTP email sent",
		logger.String("email", utils.MaskEmail(email)),
		logger.Int("status", status))
	return nil
}

// LogMailer writes mail to the log instead of sending it. Used when no
// SendGrid key is configured.
type LogMailer struct{}

// NewLogMailer creates a log only mailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendOTPEmail logs the code
func (m *LogMailer) SendOTPEmail(ctx context.Context, email, name, code string, expiry time.Duration) error {
	logger.Warn("Mail delivery disabled, OTP written to log",
		logger.String("email", utils.MaskEmail(email)),
		logger.String("otp", code),
		logger.Duration("expiry", expiry))
	return nil
}
