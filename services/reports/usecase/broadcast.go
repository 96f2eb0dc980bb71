package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nagaralert/nagarhub/internal/pkg/logger"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// ContactFilter decides whether a contact should receive a broadcast.
type ContactFilter func(contact *models.BroadcastContact) bool

// MatchAll passes every contact. Demo configurations only.
func MatchAll(_ *models.BroadcastContact) bool {
	return true
}

// LocalityFilter passes contacts registered in the given locality,
// compared case-insensitively. An empty locality matches nothing.
func LocalityFilter(locality string) ContactFilter {
	return func(contact *models.BroadcastContact) bool {
		if locality == "" {
			return false
		}
		return strings.EqualFold(contact.Locality, locality)
	}
}

// RequestBroadcast hands an administrative broadcast to the event stream.
// Delivery happens asynchronously in the NATS consumer so the caller is not
// held for the full fan-out.
func (uc *ReportUC) RequestBroadcast(ctx context.Context, req *models.BroadcastRequest) error {
	if req.Message == "" {
		return errors.New("message is required")
	}
	return uc.reportGW.PublishBroadcastRequested(ctx, req)
}

// Broadcast fans a message out to every registered contact that passes the
// configured filter and returns the number of messages handed to the SMS
// gateway. An explicit locality on the request overrides the configured
// filter for that call.
func (uc *ReportUC) Broadcast(ctx context.Context, req *models.BroadcastRequest) (int, error) {
	if req.Message == "" {
		return 0, errors.New("message is required")
	}

	filter := uc.contactFilter
	if req.Locality != "" {
		filter = LocalityFilter(req.Locality)
	}

	dispatched := uc.dispatchAlertsFiltered(ctx, req.Message, filter)
	return dispatched, nil
}

// dispatchAlerts runs the fan-out with the filter the usecase was built
// with. Used by the submit pipeline for high and critical reports.
func (uc *ReportUC) dispatchAlerts(ctx context.Context, message string) int {
	return uc.dispatchAlertsFiltered(ctx, message, uc.contactFilter)
}

// dispatchAlertsFiltered sends the message to every matching contact. Each
// send is isolated: a failed delivery is logged and the loop continues, so
// one bad number never blocks the rest of the list.
func (uc *ReportUC) dispatchAlertsFiltered(ctx context.Context, message string, filter ContactFilter) int {
	contacts, err := uc.reportRepo.GetBroadcastContacts(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load broadcast contacts", logger.Err(err))
		return 0
	}

	dispatched := 0
	for i := range contacts {
		contact := &contacts[i]
		if contact.PhoneNumber == "" {
			continue
		}
		if !filter(contact) {
			continue
		}

		if err := uc.reportGW.SendSMS(ctx, contact.PhoneNumber, message); err != nil {
			logger.WarnCtx(ctx, "Failed to send alert SMS",
				logger.String("contact_id", contact.ID.String()),
				logger.Err(err))
			continue
		}
		dispatched++
	}

	logger.InfoCtx(ctx, fmt.Sprintf("Alert fan-out dispatched %d of %d contacts", dispatched, len(contacts)))
	return dispatched
}
