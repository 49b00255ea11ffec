package scoring

import (
	"fmt"
	"strings"
)

// AlertLevel severity for personalized alerts.
type AlertLevel string

const (
	AlertSafe    AlertLevel = "safe"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// PersonalizedAlert is one profile-specific finding.
type PersonalizedAlert struct {
	Level          AlertLevel `json:"level"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Recommendation string     `json:"recommendation"`
	MatchedTerm    string     `json:"matched_term"`
}

// Profile carries the user's declared restrictions. Empty or nil fields mean
// no restrictions of that kind.
type Profile struct {
	Allergies           []string `json:"allergies"`
	DislikedIngredients []string `json:"disliked_ingredients"`
	HealthConditions    []string `json:"health_conditions"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
}

// restriction keyword sets for the dietary pass.
var (
	veganKeywords      = []string{"milk", "egg", "honey"}
	vegetarianKeywords = []string{"meat", "chicken", "beef", "fish", "gelatin"}
	glutenKeywords     = []string{"wheat", "gluten", "barley", "rye"}
)

// GenerateAlerts cross-references classified ingredients and nutrition facts
// against the user's profile. Matching is deliberately naive substring
// containment: it is what the product has always done, and changing it would
// change the warnings users see. One danger alert is emitted per matching
// (allergen, ingredient) pair; callers may deduplicate for display but the
// generator never drops a match.
func (cfg Config) GenerateAlerts(ingredients []ClassifiedIngredient, nutrition *NutritionFacts, profile Profile) []PersonalizedAlert {
	var alerts []PersonalizedAlert

	// Allergen pass.
	for _, allergy := range profile.Allergies {
		needle := strings.ToLower(strings.TrimSpace(allergy))
		if needle == "" {
			continue
		}
		for _, ing := range ingredients {
			if matchesTerm(ing, needle) {
				alerts = append(alerts, PersonalizedAlert{
					Level:          AlertDanger,
					Title:          fmt.Sprintf("%s allergen detected", strings.TrimSpace(allergy)),
					Message:        fmt.Sprintf("This product contains %q, which matches your %s allergy.", ing.Token, strings.TrimSpace(allergy)),
					Recommendation: "Do not consume this product.",
					MatchedTerm:    strings.TrimSpace(allergy),
				})
			}
		}
	}

	// Disliked ingredients are a preference, not a hazard.
	for _, disliked := range profile.DislikedIngredients {
		needle := strings.ToLower(strings.TrimSpace(disliked))
		if needle == "" {
			continue
		}
		for _, ing := range ingredients {
			if matchesTerm(ing, needle) {
				alerts = append(alerts, PersonalizedAlert{
					Level:          AlertWarning,
					Title:          "Disliked ingredient found",
					Message:        fmt.Sprintf("This product contains %q, which you prefer to avoid.", ing.Token),
					Recommendation: "Consider an alternative product.",
					MatchedTerm:    strings.TrimSpace(disliked),
				})
			}
		}
	}

	// Health-condition pass. Thresholds interpolate the measured value so the
	// user sees exactly what tripped the warning.
	if nutrition != nil {
		for _, condition := range profile.HealthConditions {
			cond := strings.ToLower(condition)
			switch {
			case strings.Contains(cond, "diabetes"):
				if sugar, ok := sugarValue(nutrition); ok && sugar > cfg.DiabetesSugarG {
					alerts = append(alerts, PersonalizedAlert{
						Level:          AlertWarning,
						Title:          "Diabetes alert",
						Message:        fmt.Sprintf("Sugar content is %.1fg per 100g, above the %.0fg guideline for diabetes.", sugar, cfg.DiabetesSugarG),
						Recommendation: "Avoid or strictly portion this product.",
						MatchedTerm:    condition,
					})
				}
			case strings.Contains(cond, "cholesterol"):
				if fat, ok := value(nutrition.TotalFatG); ok && fat > cfg.CholesterolTotalFatG {
					alerts = append(alerts, PersonalizedAlert{
						Level:          AlertWarning,
						Title:          "Cholesterol alert",
						Message:        fmt.Sprintf("Total fat is %.1fg per 100g, above the %.0fg guideline for high cholesterol.", fat, cfg.CholesterolTotalFatG),
						Recommendation: "Prefer low-fat alternatives.",
						MatchedTerm:    condition,
					})
				} else if satFat, ok := value(nutrition.SaturatedFatG); ok && satFat > cfg.CholesterolSatFatG {
					alerts = append(alerts, PersonalizedAlert{
						Level:          AlertWarning,
						Title:          "Cholesterol alert",
						Message:        fmt.Sprintf("Saturated fat is %.1fg per 100g, above the %.0fg guideline for high cholesterol.", satFat, cfg.CholesterolSatFatG),
						Recommendation: "Prefer low-fat alternatives.",
						MatchedTerm:    condition,
					})
				}
			case strings.Contains(cond, "hypertension") || strings.Contains(cond, "blood pressure"):
				if sodium, ok := value(nutrition.SodiumMg); ok && sodium > cfg.HypertensionSodiumMg {
					alerts = append(alerts, PersonalizedAlert{
						Level:          AlertWarning,
						Title:          "Hypertension alert",
						Message:        fmt.Sprintf("Sodium is %.0fmg per 100g, above the %.0fmg guideline for hypertension.", sodium, cfg.HypertensionSodiumMg),
						Recommendation: "Limit portion size and daily sodium intake.",
						MatchedTerm:    condition,
					})
				}
			}
		}
	}

	// Dietary-restriction pass.
	for _, restriction := range profile.DietaryRestrictions {
		restr := strings.ToLower(restriction)
		var keywords []string
		switch {
		case strings.Contains(restr, "vegan"):
			keywords = veganKeywords
		case strings.Contains(restr, "vegetarian"):
			keywords = vegetarianKeywords
		case strings.Contains(restr, "gluten"):
			keywords = glutenKeywords
		default:
			continue
		}
		for _, ing := range ingredients {
			token := strings.ToLower(ing.Token)
			for _, kw := range keywords {
				if strings.Contains(token, kw) {
					alerts = append(alerts, PersonalizedAlert{
						Level:          AlertWarning,
						Title:          fmt.Sprintf("Not %s", strings.TrimSpace(restriction)),
						Message:        fmt.Sprintf("This product contains %q, which conflicts with your %s restriction.", ing.Token, strings.TrimSpace(restriction)),
						Recommendation: "Check the label before consuming.",
						MatchedTerm:    kw,
					})
					break
				}
			}
		}
	}

	if len(alerts) == 0 {
		alerts = append(alerts, PersonalizedAlert{
			Level:          AlertSafe,
			Title:          "No conflicts found",
			Message:        "Nothing in this product conflicts with your profile.",
			Recommendation: "Safe to consume based on your stated restrictions.",
		})
	}
	return alerts
}

// OverallRisk reduces a set of alerts to a single level. Danger wins over
// warning, warning over safe, independent of alert order.
func OverallRisk(alerts []PersonalizedAlert) AlertLevel {
	level := AlertSafe
	for _, a := range alerts {
		switch a.Level {
		case AlertDanger:
			return AlertDanger
		case AlertWarning:
			level = AlertWarning
		}
	}
	return level
}

// matchesTerm tests bidirectional case-insensitive containment of the term
// against the ingredient's raw token and canonical name.
func matchesTerm(ing ClassifiedIngredient, needle string) bool {
	token := strings.ToLower(ing.Token)
	canonical := strings.ToLower(ing.CanonicalName)
	if strings.Contains(token, needle) || strings.Contains(needle, token) {
		return true
	}
	if ing.Matched && (strings.Contains(canonical, needle) || strings.Contains(needle, canonical)) {
		return true
	}
	return false
}
