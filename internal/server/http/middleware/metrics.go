package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novelnest/userservice/internal/metrics"
)

// ObserveRequests records request counts and latency per matched route.
func ObserveRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
