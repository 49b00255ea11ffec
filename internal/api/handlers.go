package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/config"
	"github.com/foodconnect/backend/internal/middleware"
	"github.com/foodconnect/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "FoodConnect API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes wires every handler under /api/v1. The Redis client and S3
// config may be nil; rate limiting and image storage are then disabled.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config, cfg *config.Config) {
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	analysisService := service.NewAnalysisService(db, redisClient, profileService)
	imageService := service.NewImageService(s3Config)
	ocrClient := service.NewOCRClient(cfg.OCRBaseURL)

	var analysisLimiter, imageLimiter *middleware.RateLimiter
	if redisClient != nil {
		analysisLimiter = middleware.NewAnalysisRateLimiter(redisClient)
		imageLimiter = middleware.NewImageScanRateLimiter(redisClient)
	}

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, authService)
	analyzeHandler := NewAnalyzeHandler(analysisService, imageService, ocrClient, authService, analysisLimiter, imageLimiter)
	recipeHandler := NewRecipeHandler(service.NewRecipeService(db), authService)
	mealPlanHandler := NewMealPlanHandler(service.NewMealPlanService(db), authService)
	complaintHandler := NewComplaintHandler(service.NewComplaintService(db), authService)
	ingredientHandler := NewIngredientHandler(service.NewIngredientService(db))

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)
	analyzeHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1)
	mealPlanHandler.RegisterRoutes(v1)
	complaintHandler.RegisterRoutes(v1)
	ingredientHandler.RegisterRoutes(v1)
}

// currentUserID pulls the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

// optionalUserID returns a pointer for routes that work anonymously.
func optionalUserID(c *gin.Context) *uuid.UUID {
	id, ok := currentUserID(c)
	if !ok {
		return nil
	}
	return &id
}
