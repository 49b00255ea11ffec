package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealBudgetPlan is one saved meal-budget plan. The per-meal allocation is
// computed by the service when the plan is created or updated.
type MealBudgetPlan struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name          string         `gorm:"size:100;not null" json:"name"`
	TotalBudget   float64        `gorm:"not null" json:"total_budget"`
	Days          int            `gorm:"not null" json:"days"`
	MealsPerDay   int            `gorm:"not null" json:"meals_per_day"`
	PerMealBudget float64        `json:"per_meal_budget"`
	Notes         string         `gorm:"type:text" json:"notes"`
}
