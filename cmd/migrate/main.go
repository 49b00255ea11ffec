package main

import (
	"github.com/foodconnect/backend/config"
	"github.com/foodconnect/backend/internal/database"
	"github.com/foodconnect/backend/internal/logger"
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
		logger.L().Fatalw("migration failed", "error", err)
	}

	logger.L().Info("migrations applied")
}
