package auth

import "errors"

// Sentinel errors the HTTP handler maps to status codes.
var (
	// ErrInvalidToken marks a credential that failed verification.
	ErrInvalidToken = errors.New("invalid or expired credential")

	// ErrAdminSecretMismatch marks an admin enrollment attempt with the
	// wrong secret code.
	ErrAdminSecretMismatch = errors.New("admin secret code mismatch")

	// ErrInvalidOTP covers both a missing challenge and a wrong code, so a
	// caller cannot distinguish the two.
	ErrInvalidOTP = errors.New("invalid OTP")

	// ErrOTPExpired marks a challenge consumed after its expiry instant.
	ErrOTPExpired = errors.New("OTP expired")
)
