package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"reservio/internal/metrics"
)

// Metrics records a latency observation per request, labeled by the route
// template rather than the raw path to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
