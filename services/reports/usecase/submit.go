package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// Hazard categories that force critical priority regardless of what the
// caller asked for.
var hazardKeywords = []string{"fire", "accident"}

const (
	pointsVerifiedDelta   = 10
	pointsUnverifiedDelta = -5
)

// SubmitReport runs the full intake pipeline: validate, classify priority,
// persist, award points, publish the created event, and fan out alerts for
// high and critical reports. Only the report write is fatal; every later
// step degrades to a log line.
func (uc *ReportUC) SubmitReport(ctx context.Context, input *models.ReportInput) (*models.SubmitResult, error) {
	if input.UserID == "" {
		return nil, errors.New("userId is required")
	}
	if input.Category == "" {
		return nil, errors.New("type is required")
	}
	if input.Location == nil {
		return nil, errors.New("location is required")
	}

	priority := computePriority(input.Category, input.Priority)

	report := &models.Report{
		UserID:      input.UserID,
		Latitude:    input.Location.Lat,
		Longitude:   input.Location.Lng,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Priority:    priority,
		Status:      models.StatusPending,
		AIVerified:  input.AIVerified,
	}

	if err := uc.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to store report: %w", err)
	}

	logger.InfoCtx(ctx, "Report stored",
		logger.String("report_id", report.ID.String()),
		logger.String("user_id", report.UserID),
		logger.String("category", report.Category),
		logger.String("priority", report.Priority))

	// The report is durable from here. A client disconnect must not cancel
	// the ledger update or the alert fan-out mid-flight.
	ctx = context.WithoutCancel(ctx)

	uc.awardPoints(ctx, report)

	event := &models.ReportCreatedEvent{
		ReportID:  report.ID.String(),
		UserID:    report.UserID,
		Category:  report.Category,
		Priority:  report.Priority,
		Latitude:  report.Latitude,
		Longitude: report.Longitude,
		CreatedAt: report.CreatedAt,
	}
	if err := uc.reportGW.PublishReportCreated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish report created event",
			logger.String("report_id", report.ID.String()),
			logger.Err(err))
	}

	message := "Report submitted successfully"
	if priority == models.PriorityHigh || priority == models.PriorityCritical {
		dispatched := uc.dispatchAlerts(ctx, buildAlertMessage(report))
		message = fmt.Sprintf("Report submitted, alert dispatched to %d contacts", dispatched)
	}

	return &models.SubmitResult{
		ReportID: report.ID.String(),
		Message:  message,
	}, nil
}

// awardPoints credits verified submissions and debits unverified ones. The
// ledger update is best effort: a failed delta never fails the submission.
func (uc *ReportUC) awardPoints(ctx context.Context, report *models.Report) {
	delta := int64(pointsUnverifiedDelta)
	if report.AIVerified {
		delta = pointsVerifiedDelta
	}

	balance, err := uc.reportRepo.ApplyPointsDelta(ctx, report.UserID, delta)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to apply points delta",
			logger.String("user_id", report.UserID),
			logger.Int64("delta", delta),
			logger.Err(err))
		return
	}

	logger.InfoCtx(ctx, "Points applied",
		logger.String("user_id", report.UserID),
		logger.Int64("delta", delta),
		logger.Int64("balance", balance))
}

// computePriority resolves the effective priority of a report. A hazard
// category always escalates to critical; otherwise the caller's priority is
// honored when it names a known level.
func computePriority(category, requested string) string {
	lowered := strings.ToLower(category)
	for _, keyword := range hazardKeywords {
		if strings.Contains(lowered, keyword) {
			return models.PriorityCritical
		}
	}

	switch strings.ToLower(requested) {
	case models.PriorityHigh:
		return models.PriorityHigh
	case models.PriorityCritical:
		return models.PriorityCritical
	default:
		return models.PriorityNormal
	}
}

func buildAlertMessage(report *models.Report) string {
	return fmt.Sprintf("ALERT [%s]: %s reported near (%.5f, %.5f) at %s",
		strings.ToUpper(report.Priority),
		report.Category,
		report.Latitude,
		report.Longitude,
		report.CreatedAt.Format(time.RFC3339))
}
