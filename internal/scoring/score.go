package scoring

import "fmt"

// Safety level labels derived from the health score.
const (
	SafetyLevelSafe     = "Safe"
	SafetyLevelModerate = "Moderate"
	SafetyLevelRisky    = "Risky"
)

// Score aggregates classified ingredients and optional nutrition facts into
// a ScoreResult. The model is Nutri-Score-inspired: adverse nutrients earn
// negative points through ascending bands, beneficial nutrients earn positive
// points, and rawScore = negative - positive (lower is healthier). With no
// nutrition table the score degrades to ingredient risk-tier counting alone.
// Score is total: every input, including empty ones, produces a result.
func (cfg Config) Score(ingredients []ClassifiedIngredient, nutrition *NutritionFacts) ScoreResult {
	toxic := 0
	dangerous := 0
	for _, ing := range ingredients {
		if ing.RiskTier.IsHarmful() {
			toxic++
		}
		if ing.RiskTier == RiskDangerous {
			dangerous++
		}
	}
	high := toxic - dangerous

	if len(ingredients) == 0 && nutrition == nil {
		return ScoreResult{
			RawScore:    0,
			Grade:       "A",
			HealthScore: 100,
			SafetyLevel: SafetyLevelSafe,
			Recommendations: []Recommendation{{
				Type:     RecommendationNeutral,
				Message:  "Insufficient data to assess this product.",
				Priority: PriorityLow,
			}},
		}
	}

	if nutrition == nil {
		// Degraded mode: ingredient risk tiers only.
		healthScore := clampInt(100-10*dangerous-5*high, 0, 100)
		return ScoreResult{
			RawScore:         0,
			Grade:            cfg.gradeFromHealthScore(healthScore),
			HealthScore:      healthScore,
			SafetyLevel:      cfg.safetyLevel(healthScore),
			ToxicIngredients: toxic,
			Recommendations:  cfg.recommendations(ingredients, nil, toxic, 0),
		}
	}

	energy, _ := value(nutrition.EnergyKcal)
	sugar, _ := value(nutrition.TotalSugarG)
	if nutrition.TotalSugarG == nil {
		sugar, _ = value(nutrition.AddedSugarG)
	}
	satFat, _ := value(nutrition.SaturatedFatG)
	sodium, _ := value(nutrition.SodiumMg)
	fiber, _ := value(nutrition.FiberG)
	protein, _ := value(nutrition.ProteinG)

	negative := bandPoints(energy, cfg.EnergyBandsKcal) +
		bandPoints(sugar, cfg.SugarBandsG) +
		bandPoints(satFat, cfg.SatFatBandsG) +
		bandPoints(sodium, cfg.SodiumBandsMg)
	positive := bandPoints(fiber, cfg.FiberBandsG) +
		bandPoints(protein, cfg.ProteinBandsG)

	raw := negative - positive
	healthScore := clampInt(100-int(cfg.HealthScoreSlope*float64(raw)), 0, 100)
	satFatPoints := bandPoints(satFat, cfg.SatFatBandsG)

	return ScoreResult{
		RawScore:         raw,
		Grade:            cfg.gradeFromRaw(raw),
		PositivePoints:   positive,
		NegativePoints:   negative,
		HealthScore:      healthScore,
		SafetyLevel:      cfg.safetyLevel(healthScore),
		ToxicIngredients: toxic,
		Recommendations:  cfg.recommendations(ingredients, nutrition, toxic, satFatPoints),
	}
}

func (cfg Config) gradeFromRaw(raw int) string {
	switch {
	case raw <= cfg.GradeACutoff:
		return "A"
	case raw <= cfg.GradeBCutoff:
		return "B"
	case raw <= cfg.GradeCCutoff:
		return "C"
	case raw <= cfg.GradeDCutoff:
		return "D"
	default:
		return "E"
	}
}

// gradeFromHealthScore maps the 0-100 health score to a grade in degraded
// mode, mirroring the grade ladder the OCR collaborator historically used.
func (cfg Config) gradeFromHealthScore(score int) string {
	switch {
	case score >= cfg.DegradedGradeAFloor:
		return "A"
	case score >= cfg.DegradedGradeBFloor:
		return "B"
	case score >= cfg.DegradedGradeCFloor:
		return "C"
	case score >= cfg.DegradedGradeDFloor:
		return "D"
	default:
		return "E"
	}
}

func (cfg Config) safetyLevel(healthScore int) string {
	switch {
	case healthScore >= cfg.SafetySafeFloor:
		return SafetyLevelSafe
	case healthScore >= cfg.SafetyModerateFloor:
		return SafetyLevelModerate
	default:
		return SafetyLevelRisky
	}
}

// recommendations evaluates a fixed rule list in a fixed order so identical
// input always yields an identical, identically ordered result.
func (cfg Config) recommendations(ingredients []ClassifiedIngredient, nutrition *NutritionFacts, toxic, satFatPoints int) []Recommendation {
	var recs []Recommendation

	if toxic > 0 {
		recs = append(recs, Recommendation{
			Type:     RecommendationWarning,
			Message:  fmt.Sprintf("Contains %d high-risk ingredient(s); limit consumption.", toxic),
			Priority: PriorityHigh,
		})
	} else if len(ingredients) > 0 && !hasHarmfulAdditive(ingredients) {
		recs = append(recs, Recommendation{
			Type:     RecommendationPositive,
			Message:  "No harmful additives detected.",
			Priority: PriorityLow,
		})
	}

	if nutrition != nil {
		if satFatPoints >= cfg.SatFatWarnPoints {
			if v, ok := value(nutrition.SaturatedFatG); ok {
				recs = append(recs, Recommendation{
					Type:     RecommendationWarning,
					Message:  fmt.Sprintf("High saturated fat (%.1fg per 100g); not suitable for frequent consumption.", v),
					Priority: PriorityHigh,
				})
			}
		}
		if sugar, ok := sugarValue(nutrition); ok && sugar > cfg.DiabetesSugarG {
			recs = append(recs, Recommendation{
				Type:     RecommendationWarning,
				Message:  fmt.Sprintf("High sugar (%.1fg per 100g); limit intake to reduce diabetes risk.", sugar),
				Priority: PriorityMedium,
			})
		}
		if sodium, ok := value(nutrition.SodiumMg); ok && sodium > cfg.HypertensionSodiumMg {
			recs = append(recs, Recommendation{
				Type:     RecommendationWarning,
				Message:  fmt.Sprintf("High sodium (%.0fmg per 100g); not recommended for people with hypertension.", sodium),
				Priority: PriorityMedium,
			})
		}
		if fiber, ok := value(nutrition.FiberG); ok && bandPoints(fiber, cfg.FiberBandsG) >= 3 {
			recs = append(recs, Recommendation{
				Type:     RecommendationPositive,
				Message:  fmt.Sprintf("Good source of fiber (%.1fg per 100g).", fiber),
				Priority: PriorityLow,
			})
		}
		if protein, ok := value(nutrition.ProteinG); ok && bandPoints(protein, cfg.ProteinBandsG) >= 3 {
			recs = append(recs, Recommendation{
				Type:     RecommendationPositive,
				Message:  fmt.Sprintf("Good source of protein (%.1fg per 100g).", protein),
				Priority: PriorityLow,
			})
		}
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Type:     RecommendationNeutral,
			Message:  "No major health risks detected when consumed in moderation.",
			Priority: PriorityLow,
		})
	}
	return recs
}

// sugarValue prefers total sugars and falls back to added sugars.
func sugarValue(n *NutritionFacts) (float64, bool) {
	if n.TotalSugarG != nil {
		return value(n.TotalSugarG)
	}
	return value(n.AddedSugarG)
}

func hasHarmfulAdditive(ingredients []ClassifiedIngredient) bool {
	for _, ing := range ingredients {
		if (ing.Category == CategoryAdditive || ing.Category == CategoryPreservative) && ing.RiskTier.IsHarmful() {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
