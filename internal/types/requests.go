package types

import "github.com/foodconnect/backend/internal/scoring"

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse returns a session token.
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest replaces the user's personalization data. Nil slices
// leave the corresponding set untouched; empty slices clear it.
type UpdateProfileRequest struct {
	Bio                 *string   `json:"bio,omitempty"`
	Allergies           *[]string `json:"allergies,omitempty"`
	DislikedIngredients *[]string `json:"disliked_ingredients,omitempty"`
	HealthConditions    *[]string `json:"health_conditions,omitempty"`
	DietaryRestrictions *[]string `json:"dietary_restrictions,omitempty"`
}

// ProfileResponse is the assembled profile as the frontend consumes it.
type ProfileResponse struct {
	Username            string   `json:"username"`
	Bio                 string   `json:"bio"`
	ProfilePictureURL   string   `json:"profile_picture_url"`
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"disliked_ingredients"`
	HealthConditions    []string `json:"health_conditions"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// AnalyzeRequest is the payload for POST /analyze: tokenized ingredients plus
// optional per-100g nutrition facts, exactly as the OCR collaborator emits
// them.
type AnalyzeRequest struct {
	ProductName string                  `json:"product_name"`
	Ingredients []string                `json:"ingredients" binding:"required"`
	Nutrition   *scoring.NutritionFacts `json:"nutrition,omitempty"`
}

// CreateMealPlanRequest is the payload for the meal-budget planner.
type CreateMealPlanRequest struct {
	Name        string  `json:"name" binding:"required"`
	TotalBudget float64 `json:"total_budget" binding:"required,gt=0"`
	Days        int     `json:"days" binding:"required,gt=0"`
	MealsPerDay int     `json:"meals_per_day" binding:"required,gt=0"`
	Notes       string  `json:"notes"`
}

// CreateComplaintRequest fills a consumer-rights template.
type CreateComplaintRequest struct {
	TemplateCode string `json:"template_code" binding:"required"`
	ProductName  string `json:"product_name" binding:"required"`
	Description  string `json:"description"`
	ScanID       string `json:"scan_id,omitempty"`
}
