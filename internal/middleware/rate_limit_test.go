package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLimiterKeyPrefersUserOverIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/analyze", nil)

	// Anonymous callers are keyed by client IP.
	assert.True(t, strings.HasPrefix(limiterKey(c), "ip:"))

	// Authenticated callers share one bucket across addresses.
	id := uuid.New()
	c.Set("user_id", id)
	assert.Equal(t, id.String(), limiterKey(c))
}
