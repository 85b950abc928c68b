package database

import (
	"context"
	"fmt"

	"github.com/topi314/event-graph/server/store"
)

func (d *Database) GetParticipants(ctx context.Context) ([]store.Participant, error) {
	query := `
		SELECT id, user_id, event_id
		FROM participants
		ORDER BY position, id
	`

	var participants []store.Participant
	if err := d.db.SelectContext(ctx, &participants, query); err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	return participants, nil
}
