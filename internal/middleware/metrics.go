package middleware

import (
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per matched route.
// Unmatched paths are grouped under "unmatched" to keep label cardinality bounded.
func MetricsMiddleware(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
