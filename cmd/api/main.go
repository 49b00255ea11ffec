package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/foodconnect/backend/config"
	"github.com/foodconnect/backend/internal/database"
	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/server"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatalw("failed to load configuration", "error", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.L().Fatalw("failed to connect to database", "error", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.L().Fatalw("failed to run migrations", "error", err)
	}

	// Redis backs caching and rate limiting; the API works without it.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.L().Warnw("redis unavailable, caching and rate limiting disabled", "error", err)
		redisClient = nil
	}

	// S3 backs label-image storage; scans still work without it.
	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		logger.L().Warnw("s3 unavailable, label-image storage disabled", "error", err)
		s3Config = nil
	}

	srv := server.New(db, redisClient, s3Config, cfg)

	errChan := make(chan error, 1)
	go func() {
		logger.L().Infow("starting server", "addr", cfg.ServerHost+":"+cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.L().Fatalw("server error", "error", err)
		}
	case sig := <-quit:
		logger.L().Infow("received signal", "signal", sig.String())
	}

	logger.L().Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.L().Fatalw("server shutdown error", "error", err)
	}
	logger.L().Info("server stopped")
}
