// Command migrate applies or rolls back the database schema.
//
// Usage: migrate [up|down|status]   (default: up)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingoreader-backend/internal/app"
	"github.com/heartmarshall/lingoreader-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		err = postgres.Migrate(ctx, cfg.Database.DSN, logger)
	case "down":
		err = postgres.MigrateDown(ctx, cfg.Database.DSN, logger)
	case "status":
		err = postgres.MigrationStatus(ctx, cfg.Database.DSN, logger)
	default:
		logger.Error("unknown command", slog.String("command", command))
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migration failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
}
