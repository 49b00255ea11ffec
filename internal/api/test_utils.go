package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foodconnect/backend/config"
	"github.com/foodconnect/backend/internal/database"
	"github.com/foodconnect/backend/internal/service"
	"github.com/foodconnect/backend/internal/types"
)

// setupTestRouter builds a full router on an in-memory database. Redis and
// S3 are disabled, so caching, rate limiting and image storage are off.
func setupTestRouter(t *testing.T, ocrBaseURL string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db, ""))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		OCRBaseURL: ocrBaseURL,
	}

	router := gin.New()
	RegisterRoutes(router, db, nil, nil, cfg)
	return router, db
}

// registerTestUser creates an account and returns its token.
func registerTestUser(t *testing.T, router *gin.Engine, email, username string) string {
	t.Helper()

	body := map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
		"username": username,
	}
	rr := doJSON(router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp types.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// doJSON performs a JSON request against the router.
func doJSON(router *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// seedTemplates loads the standard complaint templates for handler tests.
func seedTemplates(t *testing.T, db *gorm.DB) {
	t.Helper()
	_, err := service.SeedComplaintTemplates(context.Background(), db)
	require.NoError(t, err)
}
