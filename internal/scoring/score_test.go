package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestScoreEmptyInput(t *testing.T) {
	result := DefaultConfig().Score(nil, nil)

	assert.Equal(t, 100, result.HealthScore)
	assert.Equal(t, "A", result.Grade)
	assert.Equal(t, SafetyLevelSafe, result.SafetyLevel)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, RecommendationNeutral, result.Recommendations[0].Type)
	assert.Contains(t, strings.ToLower(result.Recommendations[0].Message), "insufficient data")
}

func TestGradeCutoffBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		raw  int
		want string
	}{
		{-5, "A"},
		{-1, "A"},
		{0, "B"},
		{2, "B"},
		{3, "C"},
		{10, "C"},
		{11, "D"},
		{18, "D"},
		{19, "E"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cfg.gradeFromRaw(tc.raw), "rawScore %d", tc.raw)
	}
}

func TestScoreMonotonicInSugar(t *testing.T) {
	cfg := DefaultConfig()
	prev := 101
	for sugar := 0.0; sugar <= 60; sugar += 2.5 {
		n := &NutritionFacts{
			EnergyKcal:    f(300),
			TotalSugarG:   f(sugar),
			SaturatedFatG: f(2),
			SodiumMg:      f(150),
		}
		score := cfg.Score(nil, n).HealthScore
		assert.LessOrEqual(t, score, prev, "healthScore increased when sugar rose to %.1f", sugar)
		prev = score
	}
}

func TestScoreHealthScoreBounds(t *testing.T) {
	cfg := DefaultConfig()

	// Worst case: every band maxed out.
	worst := cfg.Score(nil, &NutritionFacts{
		EnergyKcal:    f(5000),
		TotalSugarG:   f(100),
		SaturatedFatG: f(80),
		SodiumMg:      f(9000),
	})
	assert.GreaterOrEqual(t, worst.HealthScore, 0)
	assert.Equal(t, "E", worst.Grade)

	// Best case: protein and fiber only.
	best := cfg.Score(nil, &NutritionFacts{
		FiberG:   f(12),
		ProteinG: f(25),
	})
	assert.LessOrEqual(t, best.HealthScore, 100)
	assert.Equal(t, "A", best.Grade)
}

func TestScoreClampsNegativeNutrients(t *testing.T) {
	cfg := DefaultConfig()
	res := cfg.Score(nil, &NutritionFacts{
		TotalSugarG: f(-10),
		SodiumMg:    f(-400),
	})
	assert.Equal(t, 0, res.NegativePoints)
	assert.Equal(t, 100, res.HealthScore)
}

func TestScoreDegradedModeWithoutNutrition(t *testing.T) {
	cfg := DefaultConfig()
	ingredients := Classify([]string{"BHT", "MSG", "sugar"}) // dangerous + high + medium

	res := cfg.Score(ingredients, nil)
	// 100 - 10*1 (dangerous) - 5*1 (high) = 85
	assert.Equal(t, 85, res.HealthScore)
	assert.Equal(t, "A", res.Grade)
	assert.Equal(t, 2, res.ToxicIngredients)

	// Many dangerous ingredients must clamp at zero, not go negative.
	pile := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		pile = append(pile, "BHT")
	}
	floor := cfg.Score(Classify(pile), nil)
	assert.Equal(t, 0, floor.HealthScore)
	assert.Equal(t, "E", floor.Grade)
}

func TestDegradedGradeLadderFollowsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{80, "A"},
		{79, "B"},
		{60, "B"},
		{59, "C"},
		{40, "C"},
		{39, "D"},
		{20, "D"},
		{19, "E"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cfg.gradeFromHealthScore(tc.score), "healthScore %d", tc.score)
	}

	// The ladder is config, not constants: a stricter A floor demotes the
	// same score.
	cfg.DegradedGradeAFloor = 95
	assert.Equal(t, "B", cfg.gradeFromHealthScore(85))
}

func TestSafetyLevelFollowsConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SafetyLevelSafe, cfg.safetyLevel(70))
	assert.Equal(t, SafetyLevelModerate, cfg.safetyLevel(69))
	assert.Equal(t, SafetyLevelModerate, cfg.safetyLevel(40))
	assert.Equal(t, SafetyLevelRisky, cfg.safetyLevel(39))

	cfg.SafetySafeFloor = 90
	assert.Equal(t, SafetyLevelModerate, cfg.safetyLevel(85))
}

func TestScoreExampleScenario(t *testing.T) {
	cfg := DefaultConfig()
	ingredients := Classify([]string{"Potatoes", "Edible Pamolien Oil", "Edible Peanut Oil", "Iodised Salt"})
	nutrition := &NutritionFacts{
		EnergyKcal:    f(520),
		TotalSugarG:   f(3),
		SaturatedFatG: f(8.7),
		SodiumMg:      f(610),
		FiberG:        f(0.43),
		ProteinG:      f(7.1),
	}

	res := cfg.Score(ingredients, nutrition)

	// High saturated fat pulls the product out of the A range.
	assert.Contains(t, []string{"B", "C"}, res.Grade)

	var satFatWarning bool
	for _, rec := range res.Recommendations {
		if rec.Type == RecommendationWarning && strings.Contains(strings.ToLower(rec.Message), "saturated fat") {
			satFatWarning = true
		}
	}
	assert.True(t, satFatWarning, "expected a high saturated fat warning, got %+v", res.Recommendations)
}

func TestScoreDeterministicRecommendationOrder(t *testing.T) {
	cfg := DefaultConfig()
	ingredients := Classify([]string{"sugar", "salt", "MSG"})
	nutrition := &NutritionFacts{
		EnergyKcal:    f(450),
		TotalSugarG:   f(22),
		SaturatedFatG: f(9),
		SodiumMg:      f(800),
	}

	first := cfg.Score(ingredients, nutrition)
	second := cfg.Score(ingredients, nutrition)
	assert.Equal(t, first, second)
	require.NotEmpty(t, first.Recommendations)
	// High-risk ingredient warning is always evaluated first.
	assert.Equal(t, PriorityHigh, first.Recommendations[0].Priority)
}

func TestScoreNoIngredientsValidRange(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []*NutritionFacts{
		{},
		{EnergyKcal: f(900)},
		{TotalSugarG: f(55), SodiumMg: f(2500)},
		{ProteinG: f(30), FiberG: f(15)},
	} {
		res := cfg.Score([]ClassifiedIngredient{}, n)
		assert.GreaterOrEqual(t, res.HealthScore, 0)
		assert.LessOrEqual(t, res.HealthScore, 100)
	}
}
