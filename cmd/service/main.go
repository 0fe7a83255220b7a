// Package main runs the journal catalog API: the REST endpoints under
// /api/v1, the MCP endpoint and the /-/ probes.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/journal-catalog/cmd/internal/bootstrap"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/http"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen/journal-catalog/internal/adapters/mcp"
	"github.com/jsamuelsen/journal-catalog/internal/app"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
	"github.com/jsamuelsen/journal-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// Set through -ldflags "-X main.Version=... -X main.Commit=... -X main.BuildTime=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := bootstrap.LoadConfig(bootstrap.Profile(""))
	if err != nil {
		return err
	}

	logger := logging.New(bootstrap.LoggingConfig(cfg))
	logging.SetDefault(logger)

	logger.Info("starting journal catalog",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	tel, err := telemetry.New(ctx, telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := tel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown failed", slog.Any("error", err))
		}
	}()

	catalog, health, err := newCatalog(cfg, logger)
	if err != nil {
		return err
	}

	mcpServer := mcp.New(catalog, mcp.Config{Name: cfg.App.Name, Version: cfg.App.Version, Logger: logger})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.NewRouterConfig(cfg, logger,
		handlers.NewHealthHandler(health, handlers.NewBuildInfo(Version, Commit, BuildTime)),
		handlers.NewCatalogHandler(catalog),
		mcpServer.Handler(),
	))

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// newCatalog opens the configured stores and registers each with the
// catalog and the readiness checks. An unconfigured store is skipped, so
// queries over it return nothing.
func newCatalog(cfg *config.Config, logger *slog.Logger) (*app.Catalog, *ports.DefaultHealthRegistry, error) {
	stores, err := bootstrap.NewStores(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	health := ports.NewHealthRegistry(ports.WithCheckTimeout(cfg.Stores.HealthCheckTimeout))
	catalog := app.NewCatalog(app.CatalogConfig{
		Logger:   logger,
		Metrics:  telemetry.NewCatalogMetrics(prometheus.DefaultRegisterer),
		Parallel: cfg.Catalog.Parallel,
	})

	if s := stores.Relational; s != nil {
		catalog.AddCategorySource(s)
		if err := health.Register(s); err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn("relational store not configured")
	}

	if s := stores.Graph; s != nil {
		catalog.AddJournalSource(s)
		if err := health.Register(s); err != nil {
			return nil, nil, err
		}
	} else {
		logger.Warn("graph store not configured")
	}

	logger.Info("readiness checks registered", slog.Any("checks", health.Names()))

	return catalog, health, nil
}

// serve runs server until ctx is cancelled or serving fails, then drains
// in-flight requests for at most grace.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, grace time.Duration) error {
	serveErr, err := server.Start()
	if err != nil {
		return err
	}

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}

		return errors.New("http server stopped unexpectedly")
	case <-ctx.Done():
		logger.Info("shutdown signal received", slog.Duration("grace", grace))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), grace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
