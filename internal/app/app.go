// Package app wires configuration, logging, storage, the event bus, and the
// HTTP transport into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fundrik/backend/internal/adapter/eventbus"
	"github.com/fundrik/backend/internal/adapter/postgres"
	campaignrepo "github.com/fundrik/backend/internal/adapter/postgres/campaign"
	"github.com/fundrik/backend/internal/config"
	"github.com/fundrik/backend/internal/service/campaign"
	"github.com/fundrik/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// adapters, builds the services, and serves HTTP until the context is
// canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	bus, closeBus, err := newEventBus(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeBus()

	repo := campaignrepo.New(pool)
	commands := campaign.NewCommandService(logger, repo, bus)
	queries := campaign.NewQueryService(logger, repo)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:   logger,
		Commands: commands,
		Queries:  queries,
		CORS:     cfg.CORS,
		Version:  BuildVersion(),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// eventBus matches the publishing contract the campaign services consume.
type eventBus interface {
	Publish(ctx context.Context, event any) error
}

// newEventBus picks the bus implementation: Redis pub/sub when a broker
// address is configured, the log-only fallback otherwise.
func newEventBus(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (eventBus, func(), error) {
	if cfg.Addr == "" {
		logger.Info("no event broker configured, events will be logged")
		return eventbus.NewLogBus(logger), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("event broker connected",
		slog.String("addr", cfg.Addr),
		slog.String("channel", cfg.EventChannel),
	)

	return eventbus.NewRedisBus(client, cfg.EventChannel), func() { _ = client.Close() }, nil
}
