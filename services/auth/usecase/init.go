package usecase

import (
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/services/auth"
)

// AuthUC implements the phone-credential to email-verified-profile flow
type AuthUC struct {
	cfg      *models.Config
	authRepo auth.AuthRepo
	authGW   auth.AuthGW
}

// NewAuthUC creates a new auth usecase
func NewAuthUC(cfg *models.Config, authRepo auth.AuthRepo, authGW auth.AuthGW) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		authRepo: authRepo,
		authGW:   authGW,
	}
}

// normalizeRole maps any unrecognized requested role to citizen. Admin must
// be asked for explicitly.
func normalizeRole(role string) string {
	if role == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleCitizen
}
