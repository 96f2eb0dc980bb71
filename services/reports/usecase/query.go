package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// GetReport returns a single report by its identifier.
func (uc *ReportUC) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	if reportID == "" {
		return nil, errors.New("report id is required")
	}
	return uc.reportRepo.GetReport(ctx, reportID)
}

// ListReports returns reports newest first, optionally filtered by status.
func (uc *ReportUC) ListReports(ctx context.Context, status string) ([]models.Report, error) {
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("unknown status: %s", status)
	}
	return uc.reportRepo.ListReports(ctx, status)
}

// ListUserReports returns a single citizen's reports, newest first.
func (uc *ReportUC) ListUserReports(ctx context.Context, userID string) ([]models.Report, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return uc.reportRepo.ListReportsByUser(ctx, userID)
}

// UpdateReportStatus moves a report through its lifecycle. Administrative.
func (uc *ReportUC) UpdateReportStatus(ctx context.Context, reportID, status string) error {
	if reportID == "" {
		return errors.New("report id is required")
	}
	if !validStatus(status) {
		return fmt.Errorf("unknown status: %s", status)
	}
	return uc.reportRepo.UpdateReportStatus(ctx, reportID, status)
}

// Leaderboard returns the highest point balances, capped at limit.
func (uc *ReportUC) Leaderboard(ctx context.Context, limit int) ([]models.PointsAccount, error) {
	return uc.reportRepo.TopPointsAccounts(ctx, limit)
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusInProgress, models.StatusResolved:
		return true
	}
	return false
}
