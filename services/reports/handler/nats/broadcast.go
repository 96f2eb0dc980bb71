package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/nagaralert/nagarhub/internal/pkg/constants"
	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	natspkg "github.com/nagaralert/nagarhub/internal/pkg/nats"
	"github.com/nagaralert/nagarhub/services/reports"
)

// NatsHandler handles NATS subscriptions for the report service
type NatsHandler struct {
	reportUC   reports.ReportUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new report NATS handler
func NewNatsHandler(reportUC reports.ReportUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		reportUC:   reportUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers initializes all NATS consumers for the report service.
// The broadcast consumer uses a queue group so only one instance runs each
// fan-out.
func (h *NatsHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectBroadcastRequested, "reports-broadcast", func(msg *nats.Msg) {
		if err := h.handleBroadcastRequest(msg.Data); err != nil {
			logger.ErrorCtx(context.Background(), "Error handling broadcast request", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to broadcast requests: %w", err)
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handleBroadcastRequest runs the fan-out for a queued broadcast
func (h *NatsHandler) handleBroadcastRequest(msg []byte) error {
	var req models.BroadcastRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return fmt.Errorf("failed to unmarshal broadcast request: %w", err)
	}

	ctx := context.Background()
	dispatched, err := h.reportUC.Broadcast(ctx, &req)
	if err != nil {
		return fmt.Errorf("broadcast fan-out failed: %w", err)
	}

	logger.InfoCtx(ctx, "Broadcast fan-out completed",
		logger.String("report_id", req.ReportID),
		logger.Int("dispatched", dispatched))
	return nil
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}
