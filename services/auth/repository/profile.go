package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// GetProfile loads a profile by its composite key. A missing row returns
// (nil, nil).
func (r *AuthRepo) GetProfile(ctx context.Context, role, uid string) (*models.Profile, error) {
	query := `SELECT uid, role, name, email, phone_number, email_verified, joined_at, last_login
		FROM profiles WHERE role = $1 AND uid = $2`

	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, query, role, uid)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates the profile on first finalize and refreshes it on
// every later one. JoinedAt survives the update, and so does the stored name
// when a later finalize omits it; everything else follows the latest
// finalize.
func (r *AuthRepo) UpsertProfile(ctx context.Context, profile *models.Profile) error {
	now := time.Now()
	if profile.JoinedAt.IsZero() {
		profile.JoinedAt = now
	}
	profile.LastLogin = now

	query := `INSERT INTO profiles (uid, role, name, email, phone_number, email_verified, joined_at, last_login)
		VALUES (:uid, :role, :name, :email, :phone_number, :email_verified, :joined_at, :last_login)
		ON CONFLICT (role, uid) DO UPDATE SET
			name = COALESCE(NULLIF(EXCLUDED.name, ''), profiles.name),
			email = EXCLUDED.email,
			phone_number = EXCLUDED.phone_number,
			email_verified = EXCLUDED.email_verified,
			last_login = EXCLUDED.last_login`

	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// TouchLastLogin stamps a successful sync without touching the rest of the
// profile
func (r *AuthRepo) TouchLastLogin(ctx context.Context, role, uid string) error {
	query := `UPDATE profiles SET last_login = $1 WHERE role = $2 AND uid = $3`

	result, err := r.db.ExecContext(ctx, query, time.Now(), role, uid)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("profile not found: %s/%s", role, uid)
	}
	return nil
}
