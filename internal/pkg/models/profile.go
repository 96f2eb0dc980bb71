package models

import (
	"time"
)

// Roles recognized by the auth flow.
const (
	RoleCitizen = "citizen"
	RoleAdmin   = "admin"
)

// Profile represents an identity profile bound to a phone-verified subject.
// Keyed by (role, uid); created on the first successful finalize and updated,
// never deleted, on each login.
type Profile struct {
	UID           string    `json:"uid" db:"uid"`
	Role          string    `json:"role" db:"role"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	PhoneNumber   string    `json:"phone_number" db:"phone_number"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	JoinedAt      time.Time `json:"joined_at" db:"joined_at"`
	LastLogin     time.Time `json:"last_login" db:"last_login"`
}
