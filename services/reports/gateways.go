package reports

import (
	"context"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/nagaralert/nagarhub/services/reports ReportGW

// ReportGW defines the external collaborators of the report pipeline
type ReportGW interface {
	// Content verifier
	VerifyImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.VerificationResult, error)

	// Image blob storage
	UploadImage(ctx context.Context, imageBytes []byte, mimeType string) (string, error)

	// Notifier-SMS
	SendSMS(ctx context.Context, phoneNumber, message string) error

	// NATS events
	PublishReportCreated(ctx context.Context, event *models.ReportCreatedEvent) error
	PublishBroadcastRequested(ctx context.Context, req *models.BroadcastRequest) error
}
