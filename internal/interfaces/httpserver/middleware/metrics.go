package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"corchet/web-api/internal/infrastructure/metrics"
)

// Metrics records a prometheus counter and duration sample per request.
// Unmatched routes share a single label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
