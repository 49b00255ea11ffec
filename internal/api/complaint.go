package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/middleware"
	"github.com/foodconnect/backend/internal/service"
	"github.com/foodconnect/backend/internal/types"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
	authService      *service.AuthService
}

func NewComplaintHandler(complaintService *service.ComplaintService, authService *service.AuthService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
		authService:      authService,
	}
}

func (h *ComplaintHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Templates are public so users can read their rights before signing up.
	router.GET("/complaints/templates", h.ListTemplates)

	complaints := router.Group("/complaints")
	complaints.Use(middleware.AuthMiddleware(h.authService))
	{
		complaints.POST("", h.CreateComplaint)
		complaints.GET("", h.ListComplaints)
		complaints.GET("/:id", h.GetComplaint)
		complaints.GET("/:id/letter", h.GetLetter)
		complaints.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *ComplaintHandler) ListTemplates(c *gin.Context) {
	templates, err := h.complaintService.ListTemplates(c.Request.Context())
	if err != nil {
		logger.L().Errorw("failed to list complaint templates", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list templates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	complaint, err := h.complaintService.CreateComplaint(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTemplate) ||
			errors.Is(err, service.ErrInvalidScanID) ||
			errors.Is(err, service.ErrScanNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.L().Errorw("failed to create complaint", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create complaint"})
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	complaints, err := h.complaintService.ListComplaints(c.Request.Context(), userID)
	if err != nil {
		logger.L().Errorw("failed to list complaints", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list complaints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	complaint, err := h.complaintService.GetComplaint(c.Request.Context(), userID, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		logger.L().Errorw("failed to load complaint", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load complaint"})
		return
	}

	c.JSON(http.StatusOK, complaint)
}

func (h *ComplaintHandler) GetLetter(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	letter, err := h.complaintService.RenderLetter(c.Request.Context(), userID, complaintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		logger.L().Errorw("failed to render letter", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render letter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"letter": letter})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	complaintID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid complaint id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.complaintService.UpdateStatus(c.Request.Context(), userID, complaintID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
			return
		}
		if errors.Is(err, service.ErrInvalidComplaintStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.L().Errorw("failed to update complaint status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update complaint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
