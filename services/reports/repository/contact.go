package repository

import (
	"context"
	"fmt"

	"github.com/nagaralert/nagarhub/internal/pkg/models"
)

// GetBroadcastContacts loads all registered broadcast contacts. The table is
// maintained by an external administrative process; this is a read-only view.
func (r *ReportRepo) GetBroadcastContacts(ctx context.Context) ([]models.BroadcastContact, error) {
	query := `
		SELECT id, name, phone_number, locality
		FROM broadcast_contacts
	`

	var contacts []models.BroadcastContact
	if err := r.db.SelectContext(ctx, &contacts, query); err != nil {
		return nil, fmt.Errorf("failed to load broadcast contacts: %w", err)
	}

	return contacts, nil
}
