package database

import (
	"context"
	"fmt"

	"github.com/topi314/event-graph/server/store"
)

func (d *Database) GetLocations(ctx context.Context) ([]store.Location, error) {
	query := `
		SELECT id, name, description, lat, lng
		FROM locations
		ORDER BY position, id
	`

	var locations []store.Location
	if err := d.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	return locations, nil
}
