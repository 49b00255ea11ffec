package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskTierRanking(t *testing.T) {
	tiers := []RiskTier{RiskSafe, RiskLow, RiskMedium, RiskHigh, RiskDangerous}
	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].rank(), tiers[i-1].rank(), "%s vs %s", tiers[i], tiers[i-1])
	}
	// Unrecognised tiers slot in at low.
	assert.Equal(t, RiskLow.rank(), RiskTier("mystery").rank())

	// Harmful means ordered at or above high.
	assert.False(t, RiskMedium.IsHarmful())
	assert.True(t, RiskHigh.IsHarmful())
	assert.True(t, RiskDangerous.IsHarmful())
}

func TestClassifyExactMatch(t *testing.T) {
	result := Classify([]string{"Potatoes", "Iodised Salt"})
	require.Len(t, result, 2)

	assert.True(t, result[0].Matched)
	assert.Equal(t, "potato", result[0].CanonicalName)
	assert.Equal(t, CategoryVegetable, result[0].Category)
	assert.Equal(t, RiskSafe, result[0].RiskTier)
	assert.Equal(t, "Potatoes", result[0].Token)

	assert.True(t, result[1].Matched)
	assert.Equal(t, "iodised salt", result[1].CanonicalName)
	assert.Equal(t, CategoryMineral, result[1].Category)
}

func TestClassifyLongestAliasWins(t *testing.T) {
	// "iodised salt variant" substring-matches both "salt" and "iodised
	// salt"; the longer alias must win.
	result := Classify([]string{"iodised salt variant"})
	require.Len(t, result, 1)
	assert.Equal(t, "iodised salt", result[0].CanonicalName)
}

func TestClassifySubstringBothDirections(t *testing.T) {
	// OCR truncation: token shorter than the alias.
	truncated := Classify([]string{"palmolein"})
	require.Len(t, truncated, 1)
	assert.True(t, truncated[0].Matched)
	assert.Equal(t, "palmolein oil", truncated[0].CanonicalName)

	// OCR extension: token longer than the alias.
	extended := Classify([]string{"refined palmolein oil blend"})
	require.Len(t, extended, 1)
	assert.True(t, extended[0].Matched)
	assert.Equal(t, "palmolein oil", extended[0].CanonicalName)
}

func TestClassifyUnknownDefaultsOptimistic(t *testing.T) {
	result := Classify([]string{"xylotriptophan extract"})
	require.Len(t, result, 1)
	assert.False(t, result[0].Matched)
	assert.Equal(t, CategoryUnknown, result[0].Category)
	assert.Equal(t, RiskLow, result[0].RiskTier)
	assert.Equal(t, "xylotriptophan extract", result[0].Token)
}

func TestClassifySkipsEmptyTokens(t *testing.T) {
	result := Classify([]string{"", "  ", "sugar"})
	require.Len(t, result, 1)
	assert.Equal(t, "sugar", result[0].CanonicalName)
}

func TestClassifyAllergenTags(t *testing.T) {
	result := Classify([]string{"Edible Peanut Oil", "Milk Solids"})
	require.Len(t, result, 2)
	assert.Contains(t, result[0].AllergenTags, "peanut")
	assert.Contains(t, result[1].AllergenTags, "dairy")
}

func TestClassifyIdempotent(t *testing.T) {
	tokens := []string{"Potatoes", "Edible Pamolien Oil", "Edible Peanut Oil", "Iodised Salt", "mystery gum"}
	first := Classify(tokens)
	second := Classify(tokens)
	assert.Equal(t, first, second)
}
