package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/insider-one/telert-api/docs"
	"github.com/insider-one/telert-api/internal/config"
	"github.com/insider-one/telert-api/internal/handler"
	"github.com/insider-one/telert-api/internal/middleware"
	"github.com/insider-one/telert-api/internal/provider"
	"github.com/insider-one/telert-api/internal/service"
)

// @title Telert API
// @version 0.2.0
// @description Send notifications from HTTP requests to various messaging services

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("starting telert api",
		"env", cfg.App.Env,
		"port", cfg.Server.Port,
	)

	// Initialize notifier
	registry := provider.NewFromConfig(cfg.Providers, logger)
	if registry.IsConfigured() {
		for _, p := range registry.ListProviders() {
			logger.Info("provider configured", "provider", p.Name, "default", p.IsDefault)
		}
	} else {
		logger.Warn("no messaging providers configured, /send will return 503")
	}

	// Initialize services
	notificationService := service.NewNotificationService(registry, logger)

	metrics := handler.NewMetrics()
	metrics.WatchProviders(func() int { return len(registry.ListProviders()) })
	notificationService.SetRecorder(metrics)

	// Setup router
	router := handler.NewRouter(handler.RouterConfig{
		Service: notificationService,
		Metrics: metrics,
		Logger:  logger,
		CORS: middleware.CORSConfig{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowCredentials: cfg.CORS.AllowCredentials,
		},
		StaticDir: cfg.Server.StaticDir,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
