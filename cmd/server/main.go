/*
Package main is the entry point for the BibleNOW Studio API server.

It is responsible for loading configuration, initializing the global logging system,
connecting the optional database and object storage, setting up the HTTP server,
and gracefully handling operating system interrupt signals (SIGINT, SIGTERM).
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"biblenow/internal/app/db"
	"biblenow/internal/app/live"
	"biblenow/internal/app/social"
	"biblenow/internal/app/storage"
	"biblenow/internal/configs"
	"biblenow/internal/handler"
	"biblenow/internal/pkg/logx"
)

func main() {
	// A missing .env file is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: Failed to read .env file: %v\n", err)
	}

	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("live_upstream", cfg.LiveUpstreamURL.String()).
		Bool("token_signing", cfg.JitsiAppSecret != "").
		Bool("database", cfg.DatabaseEnabled()).
		Bool("storage", cfg.StorageEnabled()).
		Msg("Configuration loaded successfully")

	if cfg.JitsiAppSecret == "" {
		logx.Warn("JITSI_APP_SECRET is not set. /token will answer with a configuration error.")
	}

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := &handler.AppDeps{
		Config: cfg,
		Live:   live.NewProxy(cfg.LiveUpstreamURL, handler.LiveProxyErrorHandler),
	}

	if cfg.DatabaseEnabled() {
		pool, err := db.NewPool(cfg.DatabaseDSN, db.PoolOptions{RunMigrations: cfg.RunMigrations})
		if err != nil {
			logx.Fatal(err, "Failed to connect to database")
		}
		defer pool.Close()

		deps.Social = social.NewService(db.NewProcedures(pool))
		logx.Info("Database connected; social routes enabled")
	}

	if cfg.StorageEnabled() {
		storageService, err := storage.NewStorageService(storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:     cfg.S3PublicBaseURL,
		})
		if err != nil {
			logx.Fatal(err, "Failed to initialize storage service")
		}

		deps.Storage = storageService
		logx.Info("Object storage configured; avatar uploads enabled", "bucket", cfg.S3BucketName)
	}

	// Setup HTTP server and routes
	router, stopLimiters := handler.Router(deps)
	defer stopLimiters()

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
		// No WriteTimeout: /live responses stream for as long as the upstream keeps sending.
	}

	go func() {
		logx.Info("BibleNOW Studio API starting", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
