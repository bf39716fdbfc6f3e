// Package app wires configuration, adapters, services and transport into
// the running API server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres"
	flashcardrepo "github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres/flashcard"
	listrepo "github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres/list"
	textrepo "github.com/heartmarshall/lingoreader-backend/internal/adapter/postgres/text"
	"github.com/heartmarshall/lingoreader-backend/internal/adapter/provider/article"
	"github.com/heartmarshall/lingoreader-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/lingoreader-backend/internal/adapter/storage/s3"
	"github.com/heartmarshall/lingoreader-backend/internal/auth"
	"github.com/heartmarshall/lingoreader-backend/internal/config"
	"github.com/heartmarshall/lingoreader-backend/internal/service/flashcard"
	"github.com/heartmarshall/lingoreader-backend/internal/service/text"
	"github.com/heartmarshall/lingoreader-backend/internal/service/translation"
	"github.com/heartmarshall/lingoreader-backend/internal/transport/middleware"
	"github.com/heartmarshall/lingoreader-backend/internal/transport/rest"
)

// Run is the server entry point. It blocks until ctx is cancelled and the
// HTTP server has shut down, or until startup fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("translate_provider", cfg.Translate.Provider),
		slog.Bool("storage_enabled", cfg.Storage.StorageEnabled()),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup, err := NewHandler(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	logger.Info("application stopped")
	return err
}

// NewHandler creates repositories, providers, services and the router.
// The returned cleanup stops background workers.
func NewHandler(ctx context.Context, cfg *config.Config, db Database, logger *slog.Logger) (http.Handler, func(), error) {
	// Repositories
	lists := listrepo.New(db)
	cards := flashcardrepo.New(db)
	texts := textrepo.New(db)
	tx := postgres.NewTxManager(db)

	// Providers
	translator, err := translate.New(ctx, cfg.Translate, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("translation provider: %w", err)
	}
	importer := article.NewImporter(&http.Client{Timeout: cfg.Import.Timeout}, cfg.Import.MaxBodyBytes, logger)

	// Services
	flashcardSvc := flashcard.NewService(logger, lists, cards, tx)
	translationSvc := translation.NewService(logger, translator)

	textSvc := text.NewService(logger, texts, lists, importer, nil)
	if cfg.Storage.StorageEnabled() {
		store, err := s3.New(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("ebook storage: %w", err)
		}
		textSvc = text.NewService(logger, texts, lists, importer, store)
	} else {
		logger.Warn("ebook storage disabled; uploads will be rejected")
	}

	// Transport
	health := rest.NewHealthHandler(db, nil, BuildVersion())
	if b, ok := translator.(*translate.Breaker); ok {
		health = rest.NewHealthHandler(db, b, BuildVersion())
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.Handlers{
		Health:     health,
		Texts:      rest.NewTextHandler(textSvc, cfg.Server.MaxUploadBytes, logger),
		Flashcards: rest.NewFlashcardHandler(flashcardSvc, logger),
		Translate:  rest.NewTranslateHandler(translationSvc, logger),
	}, limiter.Limit(cfg.RateLimit.TranslatePerMinute))

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt, logger),
		middleware.Logger(logger),
	)(router)

	return handler, limiter.Stop, nil
}

// Database is the part of *pgxpool.Pool the server depends on.
type Database interface {
	postgres.Querier
	postgres.TxBeginner
	Ping(ctx context.Context) error
}
