package gateway

import (
	"context"
	"fmt"
)

type smsRequest struct {
	To       string `json:"to"`
	Message  string `json:"message"`
	SenderID string `json:"sender_id,omitempty"`
}

type smsResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SendSMS dispatches a single alert message through the SMS gateway.
// The call is bounded by the client timeout; an expired call is a failure.
func (g *ReportGW) SendSMS(ctx context.Context, phoneNumber, message string) error {
	if g.cfg.SMS.GatewayURL == "" {
		return fmt.Errorf("sms gateway not configured")
	}

	req := smsRequest{
		To:       phoneNumber,
		Message:  message,
		SenderID: g.cfg.SMS.SenderID,
	}

	var resp smsResponse
	if err := g.sms.PostJSON(ctx, "/messages", req, &resp); err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}

	if !resp.Success {
		return fmt.Errorf("sms gateway rejected message: %s", resp.Error)
	}

	return nil
}
