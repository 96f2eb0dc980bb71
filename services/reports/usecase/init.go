package usecase

import (
	"github.com/nagaralert/nagarhub/internal/pkg/models"
	"github.com/nagaralert/nagarhub/services/reports"
)

// ReportUC implements the report intake pipeline
type ReportUC struct {
	cfg           *models.Config
	reportRepo    reports.ReportRepo
	reportGW      reports.ReportGW
	contactFilter ContactFilter
}

// NewReportUC creates a new report usecase. The contact filter is derived
// from the broadcast configuration: MatchAll is a demo escape hatch, the
// default restricts fan-out to the configured locality.
func NewReportUC(cfg *models.Config, reportRepo reports.ReportRepo, reportGW reports.ReportGW) *ReportUC {
	filter := LocalityFilter(cfg.Broadcast.Locality)
	if cfg.Broadcast.MatchAll {
		filter = MatchAll
	}

	return &ReportUC{
		cfg:           cfg,
		reportRepo:    reportRepo,
		reportGW:      reportGW,
		contactFilter: filter,
	}
}
