package repository

import (
	"context"
	"fmt"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// ApplyPointsDelta atomically applies a delta to a subject's balance and
// returns the new balance. The increment is a single statement so concurrent
// calls for the same subject are serialized at the storage layer; a
// read-modify-write from here would lose updates. An absent account counts
// as a zero balance. Negative balances are not clamped.
func (r *ReportRepo) ApplyPointsDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	query := `
		INSERT INTO points (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET balance = points.balance + EXCLUDED.balance
		RETURNING balance
	`

	var balance int64
	err := r.db.QueryRowContext(ctx, query, userID, delta).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to apply points delta: %w", err)
	}

	return balance, nil
}

// TopPointsAccounts returns the highest balances for the leaderboard
func (r *ReportRepo) TopPointsAccounts(ctx context.Context, limit int) ([]models.PointsAccount, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT user_id, balance
		FROM points
		ORDER BY balance DESC
		LIMIT $1
	`

	var accounts []models.PointsAccount
	if err := r.db.SelectContext(ctx, &accounts, query, limit); err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return accounts, nil
}
