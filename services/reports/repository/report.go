package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// CreateReport persists a new report. The identifier and creation timestamp
// are assigned here, never by the caller.
func (r *ReportRepo) CreateReport(ctx context.Context, report *models.Report) error {
	report.ID = uuid.New()
	report.CreatedAt = time.Now()

	query := `
		INSERT INTO reports (id, user_id, latitude, longitude, category,
			description, image_url, priority, status, ai_verified, created_at
		) VALUES (:id, :user_id, :latitude, :longitude, :category,
			:description, :image_url, :priority, :status, :ai_verified, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, report)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

// GetReport retrieves a report by its identifier
func (r *ReportRepo) GetReport(ctx context.Context, id string) (*models.Report, error) {
	query := `
		SELECT id, user_id, latitude, longitude, category, description,
			image_url, priority, status, ai_verified, created_at
		FROM reports
		WHERE id = $1
	`

	var report models.Report
	err := r.db.GetContext(ctx, &report, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report not found")
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return &report, nil
}

// ListReports returns reports ordered newest first, optionally filtered by status
func (r *ReportRepo) ListReports(ctx context.Context, status string) ([]models.Report, error) {
	query := `
		SELECT id, user_id, latitude, longitude, category, description,
			image_url, priority, status, ai_verified, created_at
		FROM reports
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	var reportList []models.Report
	if err := r.db.SelectContext(ctx, &reportList, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	return reportList, nil
}

// ListReportsByUser returns a citizen's own reports, newest first
func (r *ReportRepo) ListReportsByUser(ctx context.Context, userID string) ([]models.Report, error) {
	query := `
		SELECT id, user_id, latitude, longitude, category, description,
			image_url, priority, status, ai_verified, created_at
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var reportList []models.Report
	if err := r.db.SelectContext(ctx, &reportList, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user reports: %w", err)
	}

	return reportList, nil
}

// UpdateReportStatus moves a report through its status transitions
func (r *ReportRepo) UpdateReportStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE reports
		SET status = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update report status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("report not found")
	}

	return nil
}
