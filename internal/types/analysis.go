package types

import "github.com/foodconnect/backend/internal/scoring"

// NutriScore is the grade block of an analysis response.
type NutriScore struct {
	Grade          string `json:"grade"`
	Score          int    `json:"score"`
	PositivePoints int    `json:"positivePoints"`
	NegativePoints int    `json:"negativePoints"`
}

// NutritionSummary is the health block of an analysis response.
type NutritionSummary struct {
	HealthScore      int                     `json:"healthScore"`
	SafetyLevel      string                  `json:"safetyLevel"`
	TotalIngredients int                     `json:"totalIngredients"`
	ToxicIngredients int                     `json:"toxicIngredients"`
	Per100g          *scoring.NutritionFacts `json:"per100g,omitempty"`
}

// FSSAI reports the detected food-safety licence number, if any.
type FSSAI struct {
	Number string `json:"number,omitempty"`
	Valid  bool   `json:"valid"`
	Status string `json:"status"`
}

// AnalysisResponse is the full result for one analyzed product. The field
// names match what the frontend has always consumed.
type AnalysisResponse struct {
	Success            bool                           `json:"success"`
	ProductName        string                         `json:"productName"`
	NutriScore         NutriScore                     `json:"nutriScore"`
	Nutrition          NutritionSummary               `json:"nutrition"`
	IngredientAnalysis []scoring.ClassifiedIngredient `json:"ingredientAnalysis"`
	Recommendations    []scoring.Recommendation       `json:"recommendations"`
	PersonalizedAlerts []scoring.PersonalizedAlert    `json:"personalizedAlerts,omitempty"`
	OverallRisk        string                         `json:"overallRisk,omitempty"`
	LabelAllergens     []string                       `json:"labelAllergens,omitempty"`
	ServingSize        string                         `json:"servingSize,omitempty"`
	FSSAI              *FSSAI                         `json:"fssai,omitempty"`
	ScanID             string                         `json:"scanId,omitempty"`
}
