package database

import (
	"context"
	"fmt"

	"github.com/topi314/event-graph/server/store"
)

func (d *Database) GetEvents(ctx context.Context) ([]store.Event, error) {
	query := `
		SELECT id, title, description, date, time_from, time_to, location_id, user_id
		FROM events
		ORDER BY position, id
	`

	var events []store.Event
	if err := d.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}
