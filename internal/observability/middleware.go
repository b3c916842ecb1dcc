package observability

import (
	"time"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware returns a Gin middleware recording per-route HTTP metrics
func MetricsMiddleware(mp *MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		mp.RecordHTTPRequest(
			c.Request.Context(),
			c.Request.Method,
			route,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
