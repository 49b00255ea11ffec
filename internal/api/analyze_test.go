package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodconnect/backend/internal/types"
)

var labelIngredients = []string{"Potatoes", "Pamolien Oil", "Peanut Oil", "Lodised Salt"}

var labelNutrition = map[string]float64{
	"energy_kcal":     520,
	"total_fat_g":     35,
	"saturated_fat_g": 8.7,
	"sodium_mg":       610,
	"total_sugar_g":   3,
	"protein_g":       7.1,
}

func TestAnalyzeAnonymous(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rr := doJSON(router, http.MethodPost, "/api/v1/analyze", map[string]interface{}{
		"product_name": "Potato Chips",
		"ingredients":  labelIngredients,
		"nutrition":    labelNutrition,
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp types.AnalysisResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "C", resp.NutriScore.Grade)
	assert.Equal(t, 73, resp.Nutrition.HealthScore)
	assert.Equal(t, 4, resp.Nutrition.TotalIngredients)
	assert.Equal(t, 0, resp.Nutrition.ToxicIngredients)
	assert.Len(t, resp.IngredientAnalysis, 4)

	// OCR misspellings resolve through aliases.
	assert.Equal(t, "palmolein oil", resp.IngredientAnalysis[1].CanonicalName)
	assert.Equal(t, "iodised salt", resp.IngredientAnalysis[3].CanonicalName)

	// Anonymous requests get no personalized layer and no scan record.
	assert.Empty(t, resp.PersonalizedAlerts)
	assert.Empty(t, resp.OverallRisk)
	assert.Empty(t, resp.ScanID)
}

func TestAnalyzeMissingIngredients(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rr := doJSON(router, http.MethodPost, "/api/v1/analyze", map[string]interface{}{
		"product_name": "Mystery Snack",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAnalyzePersonalized(t *testing.T) {
	router, _ := setupTestRouter(t, "")
	token := registerTestUser(t, router, "erin@example.com", "erin")

	rr := doJSON(router, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"allergies": []string{"peanut"},
	}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodPost, "/api/v1/analyze", map[string]interface{}{
		"product_name": "Potato Chips",
		"ingredients":  labelIngredients,
		"nutrition":    labelNutrition,
	}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp types.AnalysisResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "danger", resp.OverallRisk)
	require.NotEmpty(t, resp.PersonalizedAlerts)
	assert.Equal(t, "peanut", resp.PersonalizedAlerts[0].MatchedTerm)
	require.NotEmpty(t, resp.ScanID)

	// The scan landed in history.
	rr = doJSON(router, http.MethodGet, "/api/v1/scans", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Scans []map[string]interface{} `json:"scans"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Scans, 1)
	assert.Equal(t, "Potato Chips", list.Scans[0]["product_name"])

	// Replay and delete.
	scanPath := fmt.Sprintf("/api/v1/scans/%s", resp.ScanID)
	rr = doJSON(router, http.MethodGet, scanPath, nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodDelete, scanPath, nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodGet, scanPath, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestScanHistoryIsPerUser(t *testing.T) {
	router, _ := setupTestRouter(t, "")
	tokenA := registerTestUser(t, router, "frank@example.com", "frank")
	tokenB := registerTestUser(t, router, "grace@example.com", "grace")

	rr := doJSON(router, http.MethodPost, "/api/v1/analyze", map[string]interface{}{
		"product_name": "Cookies",
		"ingredients":  []string{"wheat flour", "sugar"},
	}, tokenA)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp types.AnalysisResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ScanID)

	// Another user cannot read or delete it.
	scanPath := fmt.Sprintf("/api/v1/scans/%s", resp.ScanID)
	rr = doJSON(router, http.MethodGet, scanPath, nil, tokenB)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(router, http.MethodDelete, scanPath, nil, tokenB)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAnalyzeImage(t *testing.T) {
	ocr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/extract", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"product_name": "Potato Chips",
			"ingredients": ["Potatoes", "Pamolien Oil", "Lodised Salt"],
			"nutrition_facts": {"energy_kcal": 520, "saturated_fat_g": 8.7, "sodium_mg": 610, "total_sugar_g": 3, "protein_g": 7.1},
			"raw_text": "FSSAI Lic No 10012031000123 Ingredients: ..."
		}`)
	}))
	defer ocr.Close()

	router, _ := setupTestRouter(t, ocr.URL)
	token := registerTestUser(t, router, "heidi@example.com", "heidi")

	rr := doMultipartImage(t, router, token, []byte("fake-image-bytes"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp types.AnalysisResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Potato Chips", resp.ProductName)
	require.NotNil(t, resp.FSSAI)
	assert.True(t, resp.FSSAI.Valid)
	assert.Equal(t, "10012031000123", resp.FSSAI.Number)
}

func TestAnalyzeImageRetriesTransientFailure(t *testing.T) {
	attempts := 0
	ocr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ingredients": ["Potatoes"], "raw_text": ""}`)
	}))
	defer ocr.Close()

	router, _ := setupTestRouter(t, ocr.URL)
	token := registerTestUser(t, router, "ivan@example.com", "ivan")

	rr := doMultipartImage(t, router, token, []byte("fake-image-bytes"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 2, attempts)
}

func TestAnalyzeImageEmptyExtraction(t *testing.T) {
	ocr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ingredients": [], "raw_text": "illegible"}`)
	}))
	defer ocr.Close()

	router, _ := setupTestRouter(t, ocr.URL)
	token := registerTestUser(t, router, "judy@example.com", "judy")

	rr := doMultipartImage(t, router, token, []byte("fake-image-bytes"))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestQuotaWithoutRateLimiting(t *testing.T) {
	router, _ := setupTestRouter(t, "")
	token := registerTestUser(t, router, "quota@example.com", "quota")

	// Quota is per user; anonymous callers cannot read one.
	rr := doJSON(router, http.MethodGet, "/api/v1/analyze/quota", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Without Redis there is no limiter, and the endpoint says so.
	rr = doJSON(router, http.MethodGet, "/api/v1/analyze/quota", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"rate_limited":false`)
}

func doMultipartImage(t *testing.T, router http.Handler, token string, image []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "label.jpg")
	require.NoError(t, err)
	_, err = part.Write(image)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
