package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/museumsapi/museums-api/pkg/metrics"
)

// MetricsMiddleware counts every request by method, matched route template
// and response code. Unmatched requests are reported under "unmatched" so
// arbitrary paths cannot blow up label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
