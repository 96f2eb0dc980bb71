package gateway

import (
	"gopkg.in/gomail.v2"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// AuthGW implements the external collaborators of the auth flow. The only
// one today is the SMTP mailer carrying verification codes.
type AuthGW struct {
	cfg    *models.Config
	dialer *gomail.Dialer
}

// NewAuthGW creates a new auth gateway
func NewAuthGW(cfg *models.Config) *AuthGW {
	return &AuthGW{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
	}
}
