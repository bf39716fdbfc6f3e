package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/lingoreader-backend/migrations"
)

// Migrate applies all pending embedded migrations to the database at dsn.
func Migrate(ctx context.Context, dsn string, log *slog.Logger) error {
	provider, closeDB, err := newMigrationProvider(dsn)
	if err != nil {
		return err
	}
	defer closeDB()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.String("source", r.Source.Path),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, dsn string, log *slog.Logger) error {
	provider, closeDB, err := newMigrationProvider(dsn)
	if err != nil {
		return err
	}
	defer closeDB()

	r, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	if r != nil {
		log.InfoContext(ctx, "migration rolled back",
			slog.String("source", r.Source.Path),
			slog.Int64("version", r.Source.Version),
		)
	}

	return nil
}

// MigrationStatus logs the applied state of every embedded migration.
func MigrationStatus(ctx context.Context, dsn string, log *slog.Logger) error {
	provider, closeDB, err := newMigrationProvider(dsn)
	if err != nil {
		return err
	}
	defer closeDB()

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("goose status: %w", err)
	}
	for _, s := range statuses {
		log.InfoContext(ctx, "migration",
			slog.String("source", s.Source.Path),
			slog.String("state", string(s.State)),
		)
	}

	return nil
}

func newMigrationProvider(dsn string) (*goose.Provider, func(), error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	// goose.NewProvider handles $$-delimited bodies, unlike the legacy goose.Up.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}

	return provider, func() { _ = db.Close() }, nil
}
