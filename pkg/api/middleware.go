package api

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ufal/maskit-web/pkg/metrics"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		c.Next()
	}
}

// requestMetrics records request counts and handler latency. m may be nil.
func requestMetrics(m metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", handler,
			"status", status,
			"elapsed", elapsed)

		if m == nil {
			return
		}
		m.IncrementHTTPRequests()
		if status >= 500 {
			m.IncrementHTTPErrors()
		}
		m.ObserveAPIEndpointDuration(handler, c.Request.Method, strconv.Itoa(status), elapsed.Seconds())
	}
}
