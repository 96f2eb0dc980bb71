package models

import (
	"time"
)

// OtpChallenge represents a one-time email verification code for a subject.
// At most one live challenge exists per subject; a new request overwrites it.
type OtpChallenge struct {
	UID       string    `json:"uid"`
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge is past its expiry instant
func (o *OtpChallenge) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// MobileSyncRequest is the first call a phone-authenticated client makes
type MobileSyncRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Role    string `json:"role"`
}

// SendOTPRequest asks for an email verification code
type SendOTPRequest struct {
	IDToken    string `json:"idToken" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Role       string `json:"role"`
	SecretCode string `json:"secretCode,omitempty"`
}

// FinalizeRequest consumes the code and finalizes the profile
type FinalizeRequest struct {
	IDToken  string `json:"idToken" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
	Role     string `json:"role"`
	FullName string `json:"fullName,omitempty"`
}

// Mobile sync outcomes.
const (
	SyncStatusNewUser      = "new_user"
	SyncStatusLoginSuccess = "login_success"
	SyncStatusEmailPending = "email_pending"
)

// MobileSyncResponse tells the client which auth step to run next
type MobileSyncResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message,omitempty"`
	User    *Profile `json:"user,omitempty"`
}

// AuthResponse is returned after a successful finalize
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
