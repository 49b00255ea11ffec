package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodconnect/backend/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler logs handler errors and converts unhandled ones into a JSON
// response. Handlers that already wrote a body are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, err := range c.Errors {
			logger.L().Errorw("request error",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", err.Err,
			)
		}

		if c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < 400 {
			status = http.StatusInternalServerError
		}
		c.JSON(status, ErrorResponse{Error: c.Errors.Last().Error()})
	}
}
