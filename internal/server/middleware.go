package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/services/marketplace/helpers"
	"marketplace/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireUser resolves the caller's identity. Authentication itself is
// delegated to the identity layer in front of this service; it injects the
// authenticated user id as the X-User-ID header. Requests reaching an
// authenticated route without one are rejected, and handlers downstream
// receive the id as an explicit requester rather than ambient state.
func RequireUser(c *gin.Context) {
	raw := c.GetHeader("X-User-ID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if raw == "" || err != nil || id == 0 {
		utils.JSONError(c, http.StatusUnauthorized, errors.New("missing or invalid X-User-ID header"), "authentication required")
		c.Abort()
		return
	}

	c.Set(helpers.CurrentUserKey, uint(id))
	c.Next()
}
