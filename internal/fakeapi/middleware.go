package fakeapi

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
)

// requestID injects a unique X-Request-Id header into every
// request/response pair, keeping an inbound id when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// recovery recovers from handler panics, logs the stack, and answers 500.
func recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered", logger.Fields(
					logger.FieldError, fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
					logger.FieldMethod, c.Request.Method,
					logger.FieldPath, c.Request.URL.Path,
				))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// requestLogger logs every request with method, path, status, and
// latency. /health is skipped to keep probe noise out of the logs.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}
		fields := logger.Fields(
			logger.FieldMethod, c.Request.Method,
			logger.FieldPath, path,
			logger.FieldStatus, c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client", c.ClientIP(),
		)

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request completed", fields)
		case status >= 400:
			log.Warn("request completed", fields)
		default:
			log.Debug("request completed", fields)
		}
	}
}
