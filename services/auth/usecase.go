package auth

import (
	"context"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nagaralert/nagarhub/services/auth AuthUC

// AuthUC represents the auth flow usecase interface
type AuthUC interface {
	// MobileSync resolves a phone-verified credential to the next auth step
	MobileSync(ctx context.Context, req *models.MobileSyncRequest) (*models.MobileSyncResponse, error)

	// RequestChallenge issues a fresh email verification code
	RequestChallenge(ctx context.Context, req *models.SendOTPRequest) error

	// Finalize consumes the code and activates the profile
	Finalize(ctx context.Context, req *models.FinalizeRequest) (*models.AuthResponse, error)
}
