package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFSSAI(t *testing.T) {
	assert.Equal(t, "10012031000123", DetectFSSAI("FSSAI Lic No 10012031000123 Mfg by ..."))
	assert.Equal(t, "", DetectFSSAI("no licence number here"))
	// 13 and 15 digit runs do not qualify.
	assert.Equal(t, "", DetectFSSAI("1001203100012"))
	assert.Equal(t, "", DetectFSSAI("100120310001234"))
}

func TestOCRExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/extract", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		require.Equal(t, "label.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"product_name": "Potato Chips",
			"ingredients": ["Potatoes", "Pamolien Oil"],
			"nutrition_facts": {"energy_kcal": 520},
			"allergens": ["peanut"],
			"serving_size": "30g",
			"raw_text": "Lic No 10012031000123"
		}`)
	}))
	defer server.Close()

	client := NewOCRClient(server.URL)
	extraction, err := client.Extract(context.Background(), []byte("img"), "label.jpg")
	require.NoError(t, err)

	assert.Equal(t, "Potato Chips", extraction.ProductName)
	assert.Equal(t, []string{"Potatoes", "Pamolien Oil"}, extraction.Ingredients)
	require.NotNil(t, extraction.Nutrition)
	require.NotNil(t, extraction.Nutrition.EnergyKcal)
	assert.Equal(t, 520.0, *extraction.Nutrition.EnergyKcal)
	assert.Equal(t, []string{"peanut"}, extraction.Allergens)
	assert.Equal(t, "30g", extraction.ServingSize)

	// Licence number fell back to raw-text detection.
	assert.Equal(t, "10012031000123", extraction.FSSAINumber)
}

func TestOCRExtractRetriesServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ingredients": ["sugar"]}`)
	}))
	defer server.Close()

	client := NewOCRClient(server.URL)
	extraction, err := client.Extract(context.Background(), []byte("img"), "label.jpg")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, []string{"sugar"}, extraction.Ingredients)
}

func TestOCRExtractDoesNotRetryClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
	}))
	defer server.Close()

	client := NewOCRClient(server.URL)
	_, err := client.Extract(context.Background(), []byte("img"), "label.jpg")
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
