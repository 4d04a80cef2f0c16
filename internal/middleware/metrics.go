package middleware

import (
	"strconv"
	"time"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency labelled by the matched route
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			// unmatched paths share one label to bound cardinality
			route = "unmatched"
		}
		m.ObserveHTTPRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
