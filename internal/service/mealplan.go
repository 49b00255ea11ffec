package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodconnect/backend/internal/models"
	"github.com/foodconnect/backend/internal/types"
)

var ErrInvalidPlan = errors.New("budget, days and meals per day must all be positive")

// MealPlanService manages saved meal-budget plans. The per-meal allocation
// is derived server-side so every client shows the same number.
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

func (s *MealPlanService) CreatePlan(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealBudgetPlan, error) {
	perMeal, err := perMealBudget(req.TotalBudget, req.Days, req.MealsPerDay)
	if err != nil {
		return nil, err
	}

	plan := models.MealBudgetPlan{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		TotalBudget:   req.TotalBudget,
		Days:          req.Days,
		MealsPerDay:   req.MealsPerDay,
		PerMealBudget: perMeal,
		Notes:         req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) ListPlans(ctx context.Context, userID uuid.UUID) ([]models.MealBudgetPlan, error) {
	var plans []models.MealBudgetPlan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *MealPlanService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*models.MealBudgetPlan, error) {
	var plan models.MealBudgetPlan
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) UpdatePlan(ctx context.Context, userID, planID uuid.UUID, req *types.CreateMealPlanRequest) (*models.MealBudgetPlan, error) {
	plan, err := s.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	perMeal, err := perMealBudget(req.TotalBudget, req.Days, req.MealsPerDay)
	if err != nil {
		return nil, err
	}

	plan.Name = req.Name
	plan.TotalBudget = req.TotalBudget
	plan.Days = req.Days
	plan.MealsPerDay = req.MealsPerDay
	plan.PerMealBudget = perMeal
	plan.Notes = req.Notes

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *MealPlanService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", planID, userID).
		Delete(&models.MealBudgetPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// perMealBudget rounds to two decimals so stored plans do not accumulate
// floating-point noise.
func perMealBudget(total float64, days, mealsPerDay int) (float64, error) {
	if total <= 0 || days <= 0 || mealsPerDay <= 0 {
		return 0, ErrInvalidPlan
	}
	perMeal := total / float64(days*mealsPerDay)
	return math.Round(perMeal*100) / 100, nil
}
