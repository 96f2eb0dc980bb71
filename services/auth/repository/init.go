package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/nagaralert/nagarhub/internal/pkg/database"
	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// AuthRepo implements auth storage over Redis (challenges) and Postgres
// (profiles)
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
