package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/smart_pocket/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request latency labelled by the matched route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
