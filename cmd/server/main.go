package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voltzpay/pix-dashboard/internal/adapters/postgres"
	"github.com/voltzpay/pix-dashboard/internal/config"
	"github.com/voltzpay/pix-dashboard/internal/domain/ports"
	"github.com/voltzpay/pix-dashboard/internal/handlers/dashboard"
	"github.com/voltzpay/pix-dashboard/internal/services/stats"
	"github.com/voltzpay/pix-dashboard/pkg/logging"
	"github.com/voltzpay/pix-dashboard/pkg/observability"
	"github.com/voltzpay/pix-dashboard/pkg/timeutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pix-dashboard: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logger.Level, cfg.Logger.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting pix-dashboard",
		ports.String("timezone", cfg.Dashboard.ReferenceTimezone),
		ports.String("default_acquirer", cfg.Dashboard.DefaultAcquirer),
		ports.Duration("refresh_interval", cfg.Dashboard.RefreshInterval))

	zone, err := timeutil.LoadZone(cfg.Dashboard.ReferenceTimezone)
	if err != nil {
		return fmt.Errorf("load reference timezone: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database.ConnectionString(),
		cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer pool.Close()

	logger.Info("database connection established",
		ports.String("database", cfg.Database.Database))

	transactionRepo := postgres.NewTransactionRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	service := stats.NewService(transactionRepo, settingsRepo, zone,
		cfg.Dashboard.DefaultAcquirer, logger)

	refresher := stats.NewRefresher(service, cfg.Dashboard.RefreshInterval, logger)
	refresher.Start(ctx)
	defer refresher.Stop()

	// A snapshot older than three refresh intervals means the refresher is
	// wedged, so report unhealthy.
	healthChecker := observability.NewHealthChecker(pool, func() time.Duration {
		return time.Since(service.Stats().ComputedAt)
	}, 3*cfg.Dashboard.RefreshInterval)

	metricsServer := observability.StartMetricsServer(
		fmt.Sprintf("%d", cfg.Server.MetricsPort), healthChecker, logger)
	defer func() {
		if err := observability.ShutdownMetricsServer(metricsServer); err != nil {
			logger.Warn("metrics server shutdown", ports.Err(err))
		}
	}()

	handler := dashboard.NewHandler(service, cfg.Dashboard.RankingLimit, logger)
	apiServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      dashboard.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("dashboard API listening", ports.String("addr", apiServer.Addr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("api server: %w", err)
	case sig := <-shutdown:
		logger.Info("shutdown signal received", ports.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}

	logger.Info("pix-dashboard stopped")
	return nil
}
