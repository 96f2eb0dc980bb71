package models

import (
	"github.com/google/uuid"
)

// BroadcastContact is a registered phone number eligible to receive
// priority-triggered alerts. The table is owned by an external
// administrative process; the pipeline only reads it.
type BroadcastContact struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	PhoneNumber string    `json:"phone_number" db:"phone_number"`
	Locality    string    `json:"locality" db:"locality"`
}
