package middleware

import (
	"strconv"
	"time"

	"asset-exchange-ledger/internal/platform/metrics"

	"github.com/gin-gonic/gin"
)

// Observe creates a middleware that records request count and latency.
// The route label is the registered pattern, not the raw path, so
// parameterised routes do not explode label cardinality.
func Observe(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
