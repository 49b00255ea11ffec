package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodconnect/backend/internal/models"
)

func TestComplaintTemplatesArePublic(t *testing.T) {
	router, db := setupTestRouter(t, "")
	seedTemplates(t, db)

	rr := doJSON(router, http.MethodGet, "/api/v1/complaints/templates", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var list struct {
		Templates []models.ComplaintTemplate `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.NotEmpty(t, list.Templates)

	codes := make([]string, 0, len(list.Templates))
	for _, tpl := range list.Templates {
		codes = append(codes, tpl.Code)
	}
	assert.Contains(t, codes, "mislabelled-ingredients")
	assert.Contains(t, codes, "missing-fssai")
}

func TestComplaintLifecycle(t *testing.T) {
	router, db := setupTestRouter(t, "")
	seedTemplates(t, db)
	token := registerTestUser(t, router, "maya@example.com", "maya")

	rr := doJSON(router, http.MethodPost, "/api/v1/complaints", map[string]interface{}{
		"template_code": "mislabelled-ingredients",
		"product_name":  "Potato Chips",
		"description":   "The label omits peanut oil.",
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var complaint models.Complaint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &complaint))
	assert.Equal(t, models.ComplaintStatusDraft, complaint.Status)

	// The rendered letter carries the product details.
	letterPath := fmt.Sprintf("/api/v1/complaints/%s/letter", complaint.ID)
	rr = doJSON(router, http.MethodGet, letterPath, nil, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var letterResp struct {
		Letter string `json:"letter"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &letterResp))
	assert.True(t, strings.Contains(letterResp.Letter, "Potato Chips"))
	assert.True(t, strings.Contains(letterResp.Letter, "omits peanut oil"))

	// Move through the status ladder.
	statusPath := fmt.Sprintf("/api/v1/complaints/%s/status", complaint.ID)
	rr = doJSON(router, http.MethodPut, statusPath, map[string]string{"status": "submitted"}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(router, http.MethodPut, statusPath, map[string]string{"status": "nonsense"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(router, http.MethodGet, "/api/v1/complaints", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Complaints []models.Complaint `json:"complaints"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Complaints, 1)
	assert.Equal(t, models.ComplaintStatusSubmitted, list.Complaints[0].Status)
}

func TestComplaintUnknownTemplate(t *testing.T) {
	router, db := setupTestRouter(t, "")
	seedTemplates(t, db)
	token := registerTestUser(t, router, "nina@example.com", "nina")

	rr := doJSON(router, http.MethodPost, "/api/v1/complaints", map[string]interface{}{
		"template_code": "does-not-exist",
		"product_name":  "Potato Chips",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown complaint template")
}

func TestComplaintScanValidation(t *testing.T) {
	router, db := setupTestRouter(t, "")
	seedTemplates(t, db)
	token := registerTestUser(t, router, "ira@example.com", "ira")

	// Malformed scan id.
	rr := doJSON(router, http.MethodPost, "/api/v1/complaints", map[string]interface{}{
		"template_code": "mislabelled-ingredients",
		"product_name":  "Potato Chips",
		"scan_id":       "not-a-uuid",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid scan id")

	// Well-formed id that matches no scan of this user.
	rr = doJSON(router, http.MethodPost, "/api/v1/complaints", map[string]interface{}{
		"template_code": "mislabelled-ingredients",
		"product_name":  "Potato Chips",
		"scan_id":       uuid.NewString(),
	}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "scan not found")
}

func TestComplaintLinkedToScan(t *testing.T) {
	router, db := setupTestRouter(t, "")
	seedTemplates(t, db)
	token := registerTestUser(t, router, "omar@example.com", "omar")

	rr := doJSON(router, http.MethodPost, "/api/v1/analyze", map[string]interface{}{
		"product_name": "Potato Chips",
		"ingredients":  []string{"potatoes", "bht"},
	}, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var analysis struct {
		ScanID string `json:"scanId"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &analysis))
	require.NotEmpty(t, analysis.ScanID)

	rr = doJSON(router, http.MethodPost, "/api/v1/complaints", map[string]interface{}{
		"template_code": "mislabelled-ingredients",
		"product_name":  "Potato Chips",
		"description":   "Contains undeclared preservatives.",
		"scan_id":       analysis.ScanID,
	}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var complaint models.Complaint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &complaint))
	require.NotNil(t, complaint.ScanID)
	assert.Equal(t, analysis.ScanID, complaint.ScanID.String())
}
