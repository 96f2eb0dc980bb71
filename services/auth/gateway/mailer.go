package gateway

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/nagaralert/nagarhub/internal/pkg/logger"
)

const otpSubject = "Your Nagar Alert Hub verification code"

// SendOTPEmail delivers the verification code over SMTP. Delivery is
// synchronous; the caller decides whether a failure is fatal.
func (g *AuthGW) SendOTPEmail(ctx context.Context, email, code string) error {
	if g.cfg.SMTP.Host == "" || g.cfg.SMTP.Username == "" {
		return fmt.Errorf("email notifier not configured")
	}

	from := g.cfg.SMTP.From
	if from == "" {
		from = g.cfg.SMTP.Username
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", otpSubject)
	m.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is %s. It expires in %d minutes.\n\nIf you did not request this code, ignore this email.",
		code, g.cfg.Auth.OTPExpiryMinutes))

	if err := g.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	logger.InfoCtx(ctx, "OTP email dispatched", logger.String("email", email))
	return nil
}
