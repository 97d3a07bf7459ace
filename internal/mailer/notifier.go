package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/django/v3"

	"github.com/diaryof/diary-server/internal/model"
)

//go:embed templates/*.django
var templateFS embed.FS

const (
	registrationSubject  = "DiaryOf - Verify Your Email"
	passwordResetSubject = "DiaryOf - Password Reset"
	otpValidityText      = "10 minutes"
)

// sender delivers a rendered message.
type sender interface {
	Send(ctx context.Context, msg Message) error
}

var _ model.Notifier = (*Notifier)(nil)

// Notifier renders OTP emails and hands them to the mail API.
type Notifier struct {
	sender sender
	from   string
	views  *django.Engine
}

// NewNotifier loads the embedded templates.
func NewNotifier(sender sender, from string) (*Notifier, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open email templates: %w", err)
	}

	views := django.NewFileSystem(http.FS(sub), ".django")
	if err := views.Load(); err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return &Notifier{sender: sender, from: from, views: views}, nil
}

// SendRegistrationOTP mails the email verification code.
func (n *Notifier) SendRegistrationOTP(ctx context.Context, email, name, code string) error {
	return n.send(ctx, email, registrationSubject, "registration_otp", name, code)
}

// SendPasswordResetOTP mails the password reset code.
func (n *Notifier) SendPasswordResetOTP(ctx context.Context, email, name, code string) error {
	return n.send(ctx, email, passwordResetSubject, "password_reset_otp", name, code)
}

func (n *Notifier) send(ctx context.Context, to, subject, view, name, code string) error {
	var buf bytes.Buffer
	err := n.views.Render(&buf, view, map[string]interface{}{
		"name":     name,
		"otp":      code,
		"validity": otpValidityText,
	})
	if err != nil {
		return fmt.Errorf("failed to render %s email: %w", view, err)
	}

	return n.sender.Send(ctx, Message{
		From:    n.from,
		To:      to,
		Subject: subject,
		HTML:    buf.String(),
	})
}
