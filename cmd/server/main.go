package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/staybook/internal/api"
	"github.com/dom/staybook/internal/config"
	"github.com/dom/staybook/internal/logger"
	"github.com/dom/staybook/internal/repository/postgres"
	"github.com/dom/staybook/internal/service"
	"github.com/dom/staybook/internal/storage"
	"github.com/rs/zerolog/log"
	gormLogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(cfg.LogLevel, !cfg.IsProduction())

	// Initialize database
	gormLevel := gormLogger.Info
	if cfg.IsProduction() {
		gormLevel = gormLogger.Warn
	}
	db, err := postgres.NewConnection(cfg.DatabaseURL, gormLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Initialize photo storage
	store, err := newBlobStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.UploadBackend).Msg("failed to initialize upload storage")
	}

	// Initialize repositories and services
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, store, cfg)

	// Initialize router
	router := api.NewRouter(services, store, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Str("uploads", cfg.UploadBackend).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info().Msg("server stopped")
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.UploadBackend == config.UploadBackendS3 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewS3StoreFromEnv(ctx, cfg.S3Bucket, cfg.S3Prefix)
	}
	return storage.NewDiskStore(cfg.UploadDir)
}
