// Command cleanup deletes e-book objects in storage that no text references
// and that are older than the configured grace period. It is intended to be
// invoked by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success (or storage disabled), 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres/text"
	"github.com/heartmarshall/lingoreader-backend/internal/adapter/storage/s3"
	"github.com/heartmarshall/lingoreader-backend/internal/app"
	"github.com/heartmarshall/lingoreader-backend/internal/config"
	"github.com/heartmarshall/lingoreader-backend/internal/service/cleanup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Storage.StorageEnabled() {
		logger.Info("storage disabled, nothing to sweep")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, err := s3.New(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := cleanup.NewService(logger, text.New(pool), store)

	threshold := time.Now().Add(-cfg.Storage.OrphanGrace)

	res, err := svc.SweepEbooks(ctx, threshold)
	if err != nil {
		logger.Error("ebook sweep failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("ebook sweep completed",
		slog.Int("scanned", res.Scanned),
		slog.Int("deleted", res.Deleted),
		slog.Int("failed", res.Failed),
		slog.Time("threshold", threshold),
	)
	if res.Failed > 0 {
		os.Exit(1)
	}
}
