package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/nagaralert/nagarhub/services/auth AuthGW

// AuthGW defines the external collaborators of the auth flow
type AuthGW interface {
	// Notifier-Email
	SendOTPEmail(ctx context.Context, email, code string) error
}
