package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodconnect/backend/internal/models"
)

func TestRecipeBrowse(t *testing.T) {
	router, _ := setupTestRouter(t, "")
	token := registerTestUser(t, router, "pat@example.com", "pat")

	rr := doJSON(router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":        "Oats Porridge",
		"description": "Low sugar breakfast",
		"category":    "breakfast",
		"condition":   "diabetes",
		"ingredients": []string{"oats", "milk"},
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.Recipe
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	rr = doJSON(router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name":      "Grilled Vegetables",
		"category":  "dinner",
		"condition": "hypertension",
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	// Creation requires a token.
	rr = doJSON(router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"name": "Anonymous Dish",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Condition filter narrows the list; browsing is public.
	rr = doJSON(router, http.MethodGet, "/api/v1/recipes?condition=diabetes", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 1)
	assert.Equal(t, "Oats Porridge", list.Recipes[0].Name)

	// Keyword search.
	rr = doJSON(router, http.MethodGet, "/api/v1/recipes?q=porridge", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Recipes, 1)

	rr = doJSON(router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%s", created.ID), nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodGet, "/api/v1/recipes/not-a-uuid", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
