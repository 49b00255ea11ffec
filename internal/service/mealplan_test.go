package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerMealBudget(t *testing.T) {
	got, err := perMealBudget(2100, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	// Uneven splits round to two decimals.
	got, err = perMealBudget(1000, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 111.11, got)

	got, err = perMealBudget(50, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 16.67, got)
}

func TestPerMealBudgetRejectsNonPositiveInputs(t *testing.T) {
	for _, tc := range []struct {
		total float64
		days  int
		meals int
	}{
		{0, 7, 3},
		{-100, 7, 3},
		{2100, 0, 3},
		{2100, 7, 0},
	} {
		_, err := perMealBudget(tc.total, tc.days, tc.meals)
		assert.ErrorIs(t, err, ErrInvalidPlan)
	}
}
