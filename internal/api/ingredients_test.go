package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodconnect/backend/internal/models"
	"github.com/foodconnect/backend/internal/service"
)

func TestIngredientBrowse(t *testing.T) {
	router, db := setupTestRouter(t, "")

	seeded, err := service.NewIngredientService(db).SeedIngredients(context.Background())
	require.NoError(t, err)
	require.Greater(t, seeded, 0)

	rr := doJSON(router, http.MethodGet, "/api/v1/ingredients?risk=dangerous", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list struct {
		Ingredients []models.IngredientEntry `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.NotEmpty(t, list.Ingredients)
	for _, entry := range list.Ingredients {
		assert.Equal(t, "dangerous", entry.RiskTier)
	}

	rr = doJSON(router, http.MethodGet, "/api/v1/ingredients?q=salt", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.NotEmpty(t, list.Ingredients)
	found := false
	for _, entry := range list.Ingredients {
		if entry.CanonicalName == "iodised salt" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestIngredientSeedIsIdempotent(t *testing.T) {
	_, db := setupTestRouter(t, "")
	svc := service.NewIngredientService(db)

	first, err := svc.SeedIngredients(context.Background())
	require.NoError(t, err)
	second, err := svc.SeedIngredients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, db.Model(&models.IngredientEntry{}).Count(&count).Error)
	assert.Equal(t, int64(first), count)
}
