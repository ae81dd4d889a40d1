// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/kanban-board-service/internal/adapters/http"
	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/kanban-board-service/internal/adapters/storage/redisstore"
	"github.com/jsamuelsen11/kanban-board-service/internal/app"
	"github.com/jsamuelsen11/kanban-board-service/internal/domain/board"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/config"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/health"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-board-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-board-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	registerStores(injector, cfg, logger)
	registerDependencies(injector, cfg, logger)
	defer closeStores(injector, cfg, logger)

	// Resolving the server builds the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.ProjectClient](injector))
	if cfg.Store.Backend == config.StoreRedis {
		registry.Register(do.MustInvoke[*redisstore.Store](injector))
	}

	return serve(ctx, server, logger)
}

// serve runs server until ctx is canceled by a signal, then drains it.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining HTTP server", slog.Any("error", err))
	}
	if err := <-serverErr; err != nil {
		return err
	}

	logger.Info("shutdown complete")
	return nil
}

// closeStores releases the redis connection pool when one was opened.
func closeStores(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	if cfg.Store.Backend != config.StoreRedis {
		return
	}
	client, err := do.Invoke[*redis.Client](injector)
	if err != nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Error("closing redis client", slog.Any("error", err))
	}
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
}

// registerStores provides ports.BoardStore and ports.PreferenceStore for the
// configured backend.
func registerStores(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Store.Backend != config.StoreRedis {
		logger.Info("using in-memory store")
		do.ProvideValue[ports.BoardStore](injector, memory.NewBoardStore())
		do.ProvideValue[ports.PreferenceStore](injector, memory.NewPreferenceStore())
		return
	}

	logger.Info("using redis store",
		slog.String("addr", cfg.Store.Redis.Addr),
		slog.Int("db", cfg.Store.Redis.DB),
		slog.String("key_prefix", cfg.Store.Redis.KeyPrefix),
	)

	do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
		return redis.NewClient(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		}), nil
	})

	do.Provide(injector, func(i do.Injector) (*redisstore.Store, error) {
		return redisstore.New(do.MustInvoke[*redis.Client](i), cfg.Store.Redis.KeyPrefix), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardStore, error) {
		return do.MustInvoke[*redisstore.Store](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PreferenceStore, error) {
		return do.MustInvoke[*redisstore.Store](i), nil
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "project-api", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ProjectClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewProjectClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.BoardService, error) {
		store := do.MustInvoke[ports.BoardStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoardService(store, board.UUIDGenerator{}, metrics, logger, cfg.Board.SummaryWorkers), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return do.MustInvoke[*app.BoardService](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		client := do.MustInvoke[*acl.ProjectClient](i)
		boards := do.MustInvoke[*app.BoardService](i)
		return app.NewProjectService(client, boards, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PreferenceService, error) {
		store := do.MustInvoke[ports.PreferenceStore](i)
		return app.NewPreferenceService(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Health.CheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ProjectHandler, error) {
		svc := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewProjectHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		boards := do.MustInvoke[ports.BoardService](i)
		projects := do.MustInvoke[ports.ProjectService](i)
		return handlers.NewBoardHandler(boards, projects), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PreferenceHandler, error) {
		svc := do.MustInvoke[ports.PreferenceService](i)
		return handlers.NewPreferenceHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		// Boards and themes keep working without the project API, so only
		// the store can make the service not ready.
		return handlers.NewHealthHandler(registry, redisstore.CheckName), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		projH := do.MustInvoke[*handlers.ProjectHandler](i)
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		prefH := do.MustInvoke[*handlers.PreferenceHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(projH, boardH, prefH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
