package reports

import (
	"context"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nagaralert/nagarhub/services/reports ReportRepo

// ReportRepo defines the report storage interface
type ReportRepo interface {
	// Report store
	CreateReport(ctx context.Context, report *models.Report) error
	GetReport(ctx context.Context, id string) (*models.Report, error)
	ListReports(ctx context.Context, status string) ([]models.Report, error)
	ListReportsByUser(ctx context.Context, userID string) ([]models.Report, error)
	UpdateReportStatus(ctx context.Context, id, status string) error

	// Points ledger
	ApplyPointsDelta(ctx context.Context, userID string, delta int64) (int64, error)
	TopPointsAccounts(ctx context.Context, limit int) ([]models.PointsAccount, error)

	// Broadcast contacts (read-only)
	GetBroadcastContacts(ctx context.Context) ([]models.BroadcastContact, error)
}
