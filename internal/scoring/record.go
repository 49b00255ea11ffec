// Package scoring implements the label-analysis core: a static ingredient
// classifier, a Nutri-Score-style aggregator and a personalized alert
// generator. Everything in this package is pure and safe for concurrent use;
// the rule table is read-only after package init.
package scoring

// Category groups ingredients by what they are on the label.
type Category string

const (
	CategoryVegetable    Category = "vegetable"
	CategoryOil          Category = "oil"
	CategoryMineral      Category = "mineral"
	CategoryPreservative Category = "preservative"
	CategorySweetener    Category = "sweetener"
	CategoryDairy        Category = "dairy"
	CategoryGrain        Category = "grain"
	CategoryProtein      Category = "protein"
	CategoryAdditive     Category = "additive"
	CategoryUnknown      Category = "unknown"
)

// RiskTier is the static risk classification of an ingredient.
type RiskTier string

const (
	RiskSafe      RiskTier = "safe"
	RiskLow       RiskTier = "low"
	RiskMedium    RiskTier = "medium"
	RiskHigh      RiskTier = "high"
	RiskDangerous RiskTier = "dangerous"
)

// rank orders tiers from safest to most harmful.
func (t RiskTier) rank() int {
	switch t {
	case RiskSafe:
		return 0
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskDangerous:
		return 4
	}
	return 1
}

// IsHarmful reports whether the tier counts toward the toxic-ingredient
// total: anything ordered at or above high.
func (t RiskTier) IsHarmful() bool {
	return t.rank() >= RiskHigh.rank()
}

// IngredientRecord is one entry of the static rule table. Records are
// immutable; they are shared across concurrent classifications.
type IngredientRecord struct {
	CanonicalName string   `json:"name"`
	Aliases       []string `json:"aliases,omitempty"`
	Category      Category `json:"category"`
	RiskTier      RiskTier `json:"risk"`
	AllergenTags  []string `json:"allergen_tags,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// ClassifiedIngredient pairs an input token with the record it matched.
// Matched is false for tokens the table does not know; those carry the
// optimistic unknown placeholder so downstream scoring never has to special
// case them.
type ClassifiedIngredient struct {
	Token string `json:"ingredient"`
	IngredientRecord
	Matched bool `json:"matched"`
}

// NutritionFacts holds per-100g values parsed from the label. Fields are
// pointers because OCR frequently misses individual nutrients; absent is not
// the same as zero.
type NutritionFacts struct {
	EnergyKcal    *float64 `json:"energy_kcal,omitempty"`
	ProteinG      *float64 `json:"protein_g,omitempty"`
	CarbohydrateG *float64 `json:"carbohydrate_g,omitempty"`
	TotalFatG     *float64 `json:"total_fat_g,omitempty"`
	SaturatedFatG *float64 `json:"saturated_fat_g,omitempty"`
	TransFatG     *float64 `json:"trans_fat_g,omitempty"`
	SodiumMg      *float64 `json:"sodium_mg,omitempty"`
	TotalSugarG   *float64 `json:"total_sugar_g,omitempty"`
	AddedSugarG   *float64 `json:"added_sugar_g,omitempty"`
	FiberG        *float64 `json:"fiber_g,omitempty"`
	CholesterolMg *float64 `json:"cholesterol_mg,omitempty"`
}

// value returns the clamped nutrient value and whether it was present.
// Negative readings are OCR noise and clamp to zero.
func value(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	if *p < 0 {
		return 0, true
	}
	return *p, true
}

// RecommendationType tags a recommendation for rendering.
type RecommendationType string

const (
	RecommendationPositive RecommendationType = "positive"
	RecommendationNeutral  RecommendationType = "neutral"
	RecommendationWarning  RecommendationType = "warning"
)

// Priority orders recommendations for display.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is one human-readable line of advice.
type Recommendation struct {
	Type     RecommendationType `json:"type"`
	Message  string             `json:"message"`
	Priority Priority           `json:"priority"`
}

// ScoreResult is the aggregate output for one product.
type ScoreResult struct {
	RawScore         int              `json:"rawScore"`
	Grade            string           `json:"grade"`
	PositivePoints   int              `json:"positivePoints"`
	NegativePoints   int              `json:"negativePoints"`
	HealthScore      int              `json:"healthScore"`
	SafetyLevel      string           `json:"safetyLevel"`
	ToxicIngredients int              `json:"toxicIngredients"`
	Recommendations  []Recommendation `json:"recommendations"`
}
