package models

import (
	"time"

	"github.com/google/uuid"
)

// Priority levels for a report. Hazard categories force Critical.
const (
	PriorityNormal   = "normal"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Report statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Report represents a persisted civic-issue report
type Report struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Priority    string    `json:"priority" db:"priority"`
	Status      string    `json:"status" db:"status"`
	AIVerified  bool      `json:"ai_verified" db:"ai_verified"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// GeoPoint is a latitude/longitude pair as sent by clients
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ReportInput represents an incoming report submission
type ReportInput struct {
	UserID      string    `json:"userId" validate:"required"`
	Location    *GeoPoint `json:"location" validate:"required"`
	Category    string    `json:"type" validate:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Priority    string    `json:"priority,omitempty"`
	AIVerified  bool      `json:"aiVerified,omitempty"`
}

// SubmitResult is returned to the client after a successful submission
type SubmitResult struct {
	ReportID string `json:"reportId"`
	Message  string `json:"message"`
}

// ReportCreatedEvent is published to NATS after a report is durably written
type ReportCreatedEvent struct {
	ReportID  string    `json:"report_id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// BroadcastRequest asks the dispatcher to fan an alert out to contacts
type BroadcastRequest struct {
	ReportID string `json:"report_id,omitempty"`
	Message  string `json:"message"`
	Locality string `json:"locality,omitempty"`
}
