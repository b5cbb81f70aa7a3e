package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"listing-studio/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"client":  c.ClientIP(),
		"latency": time.Since(start).String(),
	})
}
