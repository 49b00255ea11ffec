package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/logger"
	"github.com/foodconnect/backend/internal/models"
	"github.com/foodconnect/backend/internal/scoring"
	"github.com/foodconnect/backend/internal/types"
)

// AnalysisService runs the classify/score/alert pipeline and persists scan
// history. The Redis client is optional; with a nil client every request is
// computed fresh.
type AnalysisService struct {
	db      *gorm.DB
	redis   *redis.Client
	profile *ProfileService
	cfg     scoring.Config
}

func NewAnalysisService(db *gorm.DB, redisClient *redis.Client, profile *ProfileService) *AnalysisService {
	return &AnalysisService{
		db:      db,
		redis:   redisClient,
		profile: profile,
		cfg:     scoring.DefaultConfig(),
	}
}

// Analyze classifies the ingredient tokens, scores the product, and layers
// personalized alerts on top when a user is known. The score itself never
// depends on the profile, so the cached portion is shared across users.
func (s *AnalysisService) Analyze(ctx context.Context, req *types.AnalyzeRequest, userID *uuid.UUID) (*types.AnalysisResponse, error) {
	resp, err := s.scoredResponse(ctx, req)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		profile, err := s.profile.ScoringProfile(ctx, *userID)
		if err != nil {
			return nil, err
		}
		ingredients := scoring.Classify(req.Ingredients)
		alerts := s.cfg.GenerateAlerts(ingredients, req.Nutrition, profile)
		resp.PersonalizedAlerts = alerts
		resp.OverallRisk = string(scoring.OverallRisk(alerts))

		scan, err := s.saveScan(ctx, *userID, req, resp)
		if err != nil {
			logger.L().Errorw("failed to persist scan", "error", err)
		} else {
			resp.ScanID = scan.ID.String()
		}
	}

	return resp, nil
}

// AnalyzeExtraction runs Analyze on an OCR extraction and fills the FSSAI
// block from the detected licence number.
func (s *AnalysisService) AnalyzeExtraction(ctx context.Context, extraction *OCRExtraction, userID *uuid.UUID) (*types.AnalysisResponse, error) {
	req := &types.AnalyzeRequest{
		ProductName: extraction.ProductName,
		Ingredients: extraction.Ingredients,
		Nutrition:   extraction.Nutrition,
	}

	resp, err := s.Analyze(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	resp.LabelAllergens = extraction.Allergens
	resp.ServingSize = extraction.ServingSize

	if extraction.FSSAINumber != "" {
		resp.FSSAI = &types.FSSAI{
			Number: extraction.FSSAINumber,
			Valid:  true,
			Status: "FSSAI licence number detected",
		}
	} else {
		resp.FSSAI = &types.FSSAI{
			Valid:  false,
			Status: "No FSSAI licence number found on label",
		}
	}

	return resp, nil
}

// scoredResponse computes or retrieves the profile-independent part of the
// analysis.
func (s *AnalysisService) scoredResponse(ctx context.Context, req *types.AnalyzeRequest) (*types.AnalysisResponse, error) {
	key := cacheKey(req)
	if cached := s.cacheGet(ctx, key); cached != nil {
		return cached, nil
	}

	ingredients := scoring.Classify(req.Ingredients)
	result := s.cfg.Score(ingredients, req.Nutrition)

	resp := &types.AnalysisResponse{
		Success:     true,
		ProductName: req.ProductName,
		NutriScore: types.NutriScore{
			Grade:          result.Grade,
			Score:          result.RawScore,
			PositivePoints: result.PositivePoints,
			NegativePoints: result.NegativePoints,
		},
		Nutrition: types.NutritionSummary{
			HealthScore:      result.HealthScore,
			SafetyLevel:      result.SafetyLevel,
			TotalIngredients: len(ingredients),
			ToxicIngredients: result.ToxicIngredients,
			Per100g:          req.Nutrition,
		},
		IngredientAnalysis: ingredients,
		Recommendations:    result.Recommendations,
	}

	s.cacheSet(ctx, key, resp)
	return resp, nil
}

func (s *AnalysisService) saveScan(ctx context.Context, userID uuid.UUID, req *types.AnalyzeRequest, resp *types.AnalysisResponse) (*models.ScanRecord, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	scan := models.ScanRecord{
		ID:          uuid.New(),
		UserID:      userID,
		ProductName: req.ProductName,
		Ingredients: models.JSONBStringArray(req.Ingredients),
		HealthScore: resp.Nutrition.HealthScore,
		Grade:       resp.NutriScore.Grade,
		SafetyLevel: resp.Nutrition.SafetyLevel,
		OverallRisk: resp.OverallRisk,
		ResultJSON:  string(payload),
	}
	if err := s.db.WithContext(ctx).Create(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

// ListScans returns the user's scan history, newest first.
func (s *AnalysisService) ListScans(ctx context.Context, userID uuid.UUID, limit int) ([]models.ScanRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var scans []models.ScanRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

// GetScan returns one scan with its stored analysis payload, scoped to the
// owning user.
func (s *AnalysisService) GetScan(ctx context.Context, userID, scanID uuid.UUID) (*models.ScanRecord, error) {
	var scan models.ScanRecord
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scanID, userID).
		First(&scan).Error; err != nil {
		return nil, err
	}
	return &scan, nil
}

// AttachImage links a stored label image to an existing scan.
func (s *AnalysisService) AttachImage(ctx context.Context, userID, scanID uuid.UUID, imageKey string) error {
	result := s.db.WithContext(ctx).
		Model(&models.ScanRecord{}).
		Where("id = ? AND user_id = ?", scanID, userID).
		Update("image_url", imageKey)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteScan removes one scan from the user's history.
func (s *AnalysisService) DeleteScan(ctx context.Context, userID, scanID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", scanID, userID).
		Delete(&models.ScanRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func cacheKey(req *types.AnalyzeRequest) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(req.ProductName)))
	for _, ing := range req.Ingredients {
		h.Write([]byte("|"))
		h.Write([]byte(strings.ToLower(strings.TrimSpace(ing))))
	}
	if req.Nutrition != nil {
		if data, err := json.Marshal(req.Nutrition); err == nil {
			h.Write([]byte("|"))
			h.Write(data)
		}
	}
	return fmt.Sprintf("analysis:%s", hex.EncodeToString(h.Sum(nil)))
}

func (s *AnalysisService) cacheGet(ctx context.Context, key string) *types.AnalysisResponse {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var resp types.AnalysisResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *AnalysisService) cacheSet(ctx context.Context, key string, resp *types.AnalysisResponse) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, 24*time.Hour).Err(); err != nil {
		logger.L().Warnw("failed to cache analysis", "error", err)
	}
}
