package constants

// Redis key formats
const (
	// Auth flow
	KeyAuthOTP = "auth:otp:%s" // Format: auth:otp:{uid}
)
