package main

import (
	"context"

	"github.com/foodconnect/backend/config"
	"github.com/foodconnect/backend/internal/database"
	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/service"
)

// Seeds the ingredient database mirror and the complaint letter templates.
// Safe to rerun; existing rows are updated or skipped.
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

	ctx := context.Background()

	ingredients, err := service.NewIngredientService(db).SeedIngredients(ctx)
	if err != nil {
		logger.L().Fatalw("failed to seed ingredients", "error", err)
	}
	logger.L().Infow("seeded ingredient database", "count", ingredients)

	templates, err := service.SeedComplaintTemplates(ctx, db)
	if err != nil {
		logger.L().Fatalw("failed to seed complaint templates", "error", err)
	}
	logger.L().Infow("seeded complaint templates", "created", templates)
}
