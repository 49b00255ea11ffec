package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/middleware"
	"github.com/foodconnect/backend/internal/service"
	"github.com/foodconnect/backend/internal/types"
)

type MealPlanHandler struct {
	mealPlanService *service.MealPlanService
	authService     *service.AuthService
}

func NewMealPlanHandler(mealPlanService *service.MealPlanService, authService *service.AuthService) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanService: mealPlanService,
		authService:     authService,
	}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	plans.Use(middleware.AuthMiddleware(h.authService))
	{
		plans.POST("", h.CreatePlan)
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
		plans.PUT("/:id", h.UpdatePlan)
		plans.DELETE("/:id", h.DeletePlan)
	}
}

func (h *MealPlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := h.mealPlanService.CreatePlan(c.Request.Context(), userID, &req)
	if err != nil {
		if err == service.ErrInvalidPlan {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.L().Errorw("failed to create meal plan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *MealPlanHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	plans, err := h.mealPlanService.ListPlans(c.Request.Context(), userID)
	if err != nil {
		logger.L().Errorw("failed to list meal plans", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list meal plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}

func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	plan, err := h.mealPlanService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
			return
		}
		logger.L().Errorw("failed to load meal plan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) UpdatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var req types.CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := h.mealPlanService.UpdatePlan(c.Request.Context(), userID, planID, &req)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
			return
		}
		if err == service.ErrInvalidPlan {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.L().Errorw("failed to update meal plan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	if err := h.mealPlanService.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
			return
		}
		logger.L().Errorw("failed to delete meal plan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}
