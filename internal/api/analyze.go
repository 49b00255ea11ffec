package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/middleware"
	"github.com/foodconnect/backend/internal/service"
	"github.com/foodconnect/backend/internal/types"
)

// maxLabelImageBytes caps uploaded label photos.
const maxLabelImageBytes = 10 << 20

type AnalyzeHandler struct {
	analysisService *service.AnalysisService
	imageService    *service.ImageService
	ocrClient       *service.OCRClient
	authService     *service.AuthService
	analysisLimiter *middleware.RateLimiter
	imageLimiter    *middleware.RateLimiter
}

func NewAnalyzeHandler(
	analysisService *service.AnalysisService,
	imageService *service.ImageService,
	ocrClient *service.OCRClient,
	authService *service.AuthService,
	analysisLimiter *middleware.RateLimiter,
	imageLimiter *middleware.RateLimiter,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		imageService:    imageService,
		ocrClient:       ocrClient,
		authService:     authService,
		analysisLimiter: analysisLimiter,
		imageLimiter:    imageLimiter,
	}
}

func (h *AnalyzeHandler) RegisterRoutes(router *gin.RouterGroup) {
	analyze := router.Group("/analyze")
	{
		// Text analysis works anonymously; a token adds the personalized
		// layer. The limiter keys anonymous callers by IP.
		textChain := []gin.HandlerFunc{middleware.OptionalAuthMiddleware(h.authService)}
		if h.analysisLimiter != nil {
			textChain = append(textChain, h.analysisLimiter.RateLimitMiddleware())
		}
		textChain = append(textChain, h.Analyze)
		analyze.POST("", textChain...)

		analyze.GET("/quota", middleware.AuthMiddleware(h.authService), h.Quota)

		imageRoutes := analyze.Group("")
		imageRoutes.Use(middleware.AuthMiddleware(h.authService))
		if h.imageLimiter != nil {
			imageRoutes.Use(h.imageLimiter.RateLimitMiddleware())
		}
		imageRoutes.POST("/image", h.AnalyzeImage)
	}

	scans := router.Group("/scans")
	scans.Use(middleware.AuthMiddleware(h.authService))
	{
		scans.GET("", h.ListScans)
		scans.GET("/:id", h.GetScan)
		scans.DELETE("/:id", h.DeleteScan)
	}
}

func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.analysisService.Analyze(c.Request.Context(), &req, optionalUserID(c))
	if err != nil {
		logger.L().Errorw("analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Quota reports how many analyses and image scans the user has left in the
// current window.
func (h *AnalyzeHandler) Quota(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if h.analysisLimiter == nil || h.imageLimiter == nil {
		c.JSON(http.StatusOK, gin.H{"rate_limited": false})
		return
	}

	analysisRemaining, analysisReset, err := h.analysisLimiter.GetRemainingRequests(c.Request.Context(), userID.String())
	if err != nil {
		logger.L().Errorw("failed to read analysis quota", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read quota"})
		return
	}
	imageRemaining, imageReset, err := h.imageLimiter.GetRemainingRequests(c.Request.Context(), userID.String())
	if err != nil {
		logger.L().Errorw("failed to read image scan quota", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read quota"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rate_limited": true,
		"analysis": gin.H{
			"remaining": analysisRemaining,
			"resets_at": analysisReset.Unix(),
		},
		"image_scan": gin.H{
			"remaining": imageRemaining,
			"resets_at": imageReset.Unix(),
		},
	})
}

func (h *AnalyzeHandler) AnalyzeImage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxLabelImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	extraction, err := h.ocrClient.Extract(c.Request.Context(), imageData, fileHeader.Filename)
	if err != nil {
		logger.L().Errorw("ocr extraction failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "label extraction failed"})
		return
	}

	if len(extraction.Ingredients) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "no ingredients could be read from the label",
		})
		return
	}

	resp, err := h.analysisService.AnalyzeExtraction(c.Request.Context(), extraction, &userID)
	if err != nil {
		logger.L().Errorw("analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	// Image storage is best-effort; the analysis already succeeded.
	if key, err := h.imageService.StoreLabelImage(c.Request.Context(), imageData, fileHeader.Filename); err != nil {
		logger.L().Warnw("failed to store label image", "error", err)
	} else if key != "" && resp.ScanID != "" {
		h.attachImage(c, resp.ScanID, userID, key)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AnalyzeHandler) attachImage(c *gin.Context, scanID string, userID uuid.UUID, key string) {
	id, err := uuid.Parse(scanID)
	if err != nil {
		return
	}
	if err := h.analysisService.AttachImage(c.Request.Context(), userID, id, key); err != nil {
		logger.L().Warnw("failed to attach image to scan", "error", err)
	}
}

func (h *AnalyzeHandler) ListScans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	scans, err := h.analysisService.ListScans(c.Request.Context(), userID, limit)
	if err != nil {
		logger.L().Errorw("failed to list scans", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans})
}

func (h *AnalyzeHandler) GetScan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	scanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scan id"})
		return
	}

	scan, err := h.analysisService.GetScan(c.Request.Context(), userID, scanID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
			return
		}
		logger.L().Errorw("failed to load scan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scan"})
		return
	}

	// Replay the stored analysis payload alongside the record.
	var analysis types.AnalysisResponse
	if err := json.Unmarshal([]byte(scan.ResultJSON), &analysis); err != nil {
		c.JSON(http.StatusOK, gin.H{"scan": scan})
		return
	}

	imageURL, err := h.imageService.ImageURL(c.Request.Context(), scan.ImageURL)
	if err != nil {
		logger.L().Warnw("failed to presign image url", "error", err)
		imageURL = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"scan":      scan,
		"analysis":  analysis,
		"image_url": imageURL,
	})
}

func (h *AnalyzeHandler) DeleteScan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	scanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scan id"})
		return
	}

	if err := h.analysisService.DeleteScan(c.Request.Context(), userID, scanID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
			return
		}
		logger.L().Errorw("failed to delete scan", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete scan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "scan deleted"})
}
