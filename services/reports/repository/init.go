package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// ReportRepo implements report, points and contact storage on PostgreSQL
type ReportRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReportRepo creates a new report repository instance
func NewReportRepo(cfg *models.Config, db *sqlx.DB) *ReportRepo {
	return &ReportRepo{
		cfg: cfg,
		db:  db,
	}
}
