package auth

import (
	"context"
	"time"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nagaralert/nagarhub/services/auth AuthRepo

// AuthRepo defines the auth storage interface: OTP challenges live in Redis,
// profiles in Postgres.
type AuthRepo interface {
	// OTP challenge store (one live challenge per subject)
	StoreChallenge(ctx context.Context, challenge *models.OtpChallenge, ttl time.Duration) error
	GetChallenge(ctx context.Context, uid string) (*models.OtpChallenge, error)
	DeleteChallenge(ctx context.Context, uid string) error

	// Profile store
	GetProfile(ctx context.Context, role, uid string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, profile *models.Profile) error
	TouchLastLogin(ctx context.Context, role, uid string) error
}
