package database

import (
	"context"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/topi314/gomigrate"
	"github.com/topi314/gomigrate/drivers/postgres"
	"golang.org/x/sync/errgroup"

	"github.com/topi314/event-graph/server/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

func New(ctx context.Context, cfg Config) (*Database, error) {
	dbx, err := sqlx.ConnectContext(ctx, "pgx", cfg.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err = gomigrate.Migrate(ctx, dbx, postgres.New, migrations); err != nil {
		_ = dbx.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Database{
		db: dbx,
	}, nil
}

// Database is a read-only seed source, the store never writes back to it.
type Database struct {
	db *sqlx.DB
}

func (d *Database) Close() error {
	if err := d.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// Snapshot loads all four tables concurrently.
func (d *Database) Snapshot(ctx context.Context) (store.Snapshot, error) {
	var snapshot store.Snapshot

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		snapshot.Events, err = d.GetEvents(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		snapshot.Users, err = d.GetUsers(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		snapshot.Locations, err = d.GetLocations(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		snapshot.Participants, err = d.GetParticipants(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return store.Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return snapshot, nil
}

// LoadSnapshot connects, loads the snapshot and closes the connection again.
func LoadSnapshot(ctx context.Context, cfg Config) (store.Snapshot, error) {
	db, err := New(ctx, cfg)
	if err != nil {
		return store.Snapshot{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	return db.Snapshot(ctx)
}
