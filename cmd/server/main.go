package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/clientportal/stockmonitor/internal/config"
	"github.com/clientportal/stockmonitor/internal/core"
	"github.com/clientportal/stockmonitor/internal/logging"
	"github.com/clientportal/stockmonitor/internal/schema"
	"github.com/clientportal/stockmonitor/internal/sheets"
	"github.com/clientportal/stockmonitor/internal/web"
	"github.com/clientportal/stockmonitor/internal/webhook"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"refresh_enabled", cfg.Refresh.Enabled,
		"refresh_interval", cfg.Refresh.Interval,
		"critical_threshold", cfg.Monitor.CriticalThreshold,
		"webhook_configured", cfg.Webhook.URL != "",
		"rate_limit_enabled", cfg.Rate.Enabled,
	)

	fetcher, err := sheets.NewClient(cfg.Sheet.URL, cfg.Sheet.GID, cfg.Sheet.FetchTimeout)
	if err != nil {
		slog.Error("failed to configure sheet client", "error", err)
		os.Exit(1)
	}

	service := core.NewService(
		fetcher,
		schema.InventoryAliasSpecs,
		decimal.NewFromInt(int64(cfg.Monitor.CriticalThreshold)),
	)
	notifier := webhook.NewNotifier(cfg.Webhook.URL)

	server := web.NewServer(service, notifier, cfg)

	// Cancellable context for the background refresh loop
	jobCtx, cancelJobs := context.WithCancel(context.Background())

	if cfg.Refresh.Enabled {
		go service.StartRefreshScheduler(jobCtx, cfg.Refresh.Interval)
	} else {
		slog.Info("background refresh disabled, use POST /api/refresh")
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("starting server", "addr", cfg.Server.Addr())
	if err := server.Start(cfg.Server.Addr()); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
