// MasKIT web front end: renders anonymized output and keeps per-user
// sessions against the remote MasKIT service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ufal/maskit-web/pkg/api"
	"github.com/ufal/maskit-web/pkg/cleanup"
	"github.com/ufal/maskit-web/pkg/config"
	"github.com/ufal/maskit-web/pkg/maskit"
	"github.com/ufal/maskit-web/pkg/metrics"
	"github.com/ufal/maskit-web/pkg/session"
	"github.com/ufal/maskit-web/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	cfg.Server.HTTPPort = getEnv("HTTP_PORT", cfg.Server.HTTPPort)

	slog.Info("Starting MasKIT web",
		"version", version.GitCommit,
		"http_port", cfg.Server.HTTPPort,
		"api_base_url", cfg.API.BaseURL,
		"config_dir", *configDir)

	// 2. Remote client, sessions and metrics
	m := metrics.NewMetrics(version.GitCommit)

	clientOpts := maskit.OptionsFromConfig(cfg.API)
	clientOpts.Recorder = m
	service := maskit.NewService(maskit.NewClient(clientOpts), cfg.API.InfoCacheTTL)

	sessions := session.NewManager(cfg.Display)

	// 3. Idle session cleanup
	cleanupService := cleanup.NewService(cfg.Server, sessions, m)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 4. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, service, sessions, m)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("MasKIT web started successfully")

	// 5. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 6. Graceful shutdown. Submissions in flight are bounded by the submit timeout.
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("MasKIT web shutdown complete")
}
