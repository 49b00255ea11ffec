package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/service"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
}

func NewIngredientHandler(ingredientService *service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	// The ingredient database is public reference material.
	router.GET("/ingredients", h.ListIngredients)
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.ingredientService.ListIngredients(
		c.Request.Context(),
		c.Query("category"),
		c.Query("risk"),
		c.Query("q"),
		limit,
		offset,
	)
	if err != nil {
		logger.L().Errorw("failed to list ingredients", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list ingredients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": entries})
}
