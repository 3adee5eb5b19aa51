// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scottmc500/ScottLMS/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count, latency and in-flight requests. Requests are
// labelled by route template, so /api/v1/courses/:id is one series however
// many course ids are served. Scrapes of /metrics are not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start).Seconds())
	}
}
