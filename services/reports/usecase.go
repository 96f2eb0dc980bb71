package reports

import (
	"context"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nagaralert/nagarhub/services/reports ReportUC

// ReportUC represents the report intake usecase interface
type ReportUC interface {
	// intake pipeline
	SubmitReport(ctx context.Context, input *models.ReportInput) (*models.SubmitResult, error)

	// content verification
	VerifyImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.VerificationResult, error)

	// image storage
	UploadImage(ctx context.Context, imageBytes []byte, mimeType string) (*models.UploadResult, error)

	// broadcast dispatch
	RequestBroadcast(ctx context.Context, req *models.BroadcastRequest) error
	Broadcast(ctx context.Context, req *models.BroadcastRequest) (int, error)

	// report queries and administration
	GetReport(ctx context.Context, reportID string) (*models.Report, error)
	ListReports(ctx context.Context, status string) ([]models.Report, error)
	ListUserReports(ctx context.Context, userID string) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, reportID, status string) error
	Leaderboard(ctx context.Context, limit int) ([]models.PointsAccount, error)
}
