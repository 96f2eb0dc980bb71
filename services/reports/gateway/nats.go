package gateway

import (
	"context"
	"fmt"

	"github.com/nagaralert/nagarhub/internal/pkg/constants"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// PublishReportCreated publishes a report.created event to NATS
func (g *ReportGW) PublishReportCreated(ctx context.Context, event *models.ReportCreatedEvent) error {
	if err := g.natsClient.PublishJSON(constants.SubjectReportCreated, event); err != nil {
		return fmt.Errorf("failed to publish report created event: %w", err)
	}

	logger.InfoCtx(ctx, "Published report created event",
		logger.String("report_id", event.ReportID),
		logger.String("priority", event.Priority))
	return nil
}

// PublishBroadcastRequested publishes a broadcast.requested event to NATS
func (g *ReportGW) PublishBroadcastRequested(ctx context.Context, req *models.BroadcastRequest) error {
	if err := g.natsClient.PublishJSON(constants.SubjectBroadcastRequested, req); err != nil {
		return fmt.Errorf("failed to publish broadcast request: %w", err)
	}

	logger.InfoCtx(ctx, "Published broadcast request",
		logger.String("locality", req.Locality))
	return nil
}
