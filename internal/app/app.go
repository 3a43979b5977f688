// Package app assembles the service: configuration, logging, adapters,
// the composer service, and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	"github.com/Strawberry-Team/calendula-client/internal/adapter/calendula"
	draftmem "github.com/Strawberry-Team/calendula-client/internal/adapter/draft"
	"github.com/Strawberry-Team/calendula-client/internal/adapter/notify"
	"github.com/Strawberry-Team/calendula-client/internal/adapter/postgres"
	draftpg "github.com/Strawberry-Team/calendula-client/internal/adapter/postgres/draft"
	"github.com/Strawberry-Team/calendula-client/internal/auth"
	"github.com/Strawberry-Team/calendula-client/internal/config"
	"github.com/Strawberry-Team/calendula-client/internal/domain"
	"github.com/Strawberry-Team/calendula-client/internal/service/composer"
	"github.com/Strawberry-Team/calendula-client/internal/transport/middleware"
	"github.com/Strawberry-Team/calendula-client/internal/transport/rest"
)

// draftStore is the store contract shared by both backends.
type draftStore interface {
	Read(ctx context.Context, userID uuid.UUID) (*domain.DraftEvent, error)
	Write(ctx context.Context, userID uuid.UUID, draft domain.DraftEvent) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

// jwtValidator adapts the JWT manager to the auth middleware.
type jwtValidator struct {
	m *auth.JWTManager
}

func (v jwtValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	return v.m.ValidateAccessToken(token)
}

// Run is the application entry point. It loads configuration, wires
// every component, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("draft_store", cfg.Draft.Store),
	)

	upstream := calendula.NewClient(cfg.Upstream.BaseURL, logger)
	feed := notify.NewFeed()

	var (
		drafts draftStore
		pinger dbPinger
		pool   *pgxpool.Pool
	)
	switch cfg.Draft.Store {
	case config.DraftStorePostgres:
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()
		drafts = draftpg.NewRepo(pool)
		pinger = pool
	default:
		drafts = draftmem.NewMemoryStore()
	}

	svc := composer.NewService(logger, upstream, drafts, feed, feed)

	mux := rest.NewRouter(rest.Handlers{
		Form:          rest.NewFormHandler(svc, logger),
		Draft:         rest.NewDraftHandler(drafts, logger),
		Notifications: rest.NewNotificationHandler(feed, logger),
		Health:        rest.NewHealthHandler(pinger, BuildVersion()),
	})

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(),
		middleware.Auth(jwtValidator{m: jwt}),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// migrate applies pending goose migrations from the migrations dir.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS("migrations"))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
