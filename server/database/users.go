package database

import (
	"context"
	"fmt"

	"github.com/topi314/event-graph/server/store"
)

func (d *Database) GetUsers(ctx context.Context) ([]store.User, error) {
	query := `
		SELECT id, username, email, event_id
		FROM users
		ORDER BY position, id
	`

	var users []store.User
	if err := d.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}
