package newrelic

import (
	"log"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// InitNewRelic initializes the New Relic application when enabled.
// Returns nil when disabled or misconfigured; callers must tolerate a nil app.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = configs.App.Name
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: failed to initialize New Relic: %v", err)
		return nil
	}

	return app
}
