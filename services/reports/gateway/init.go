package gateway

import (
	"time"

	httpclient "github.com/nagaralert/nagarhub/internal/pkg/http"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	natspkg "github.com/nagaralert/nagarhub/internal/pkg/nats"
)

// ReportGW implements the external collaborators of the report pipeline:
// the content verifier, the image blob store, the SMS notifier and the
// NATS event stream.
type ReportGW struct {
	cfg        *models.Config
	natsClient *natspkg.Client
	gemini     *httpclient.Client
	storage    *httpclient.Client
	sms        *httpclient.APIKeyClient
}

// NewReportGW creates a new report gateway
func NewReportGW(cfg *models.Config, natsClient *natspkg.Client) *ReportGW {
	geminiTimeout := time.Duration(cfg.Gemini.Timeout) * time.Second

	return &ReportGW{
		cfg:        cfg,
		natsClient: natsClient,
		gemini:     httpclient.NewClient(cfg.Gemini.BaseURL, geminiTimeout),
		storage:    httpclient.NewClient("https://api.cloudinary.com/v1_1", 30*time.Second),
		sms:        httpclient.NewAPIKeyClient(cfg.SMS.APIKey, cfg.SMS.GatewayURL),
	}
}
