package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marketstall/market-api/internal/metrics"
)

// Metrics records request count and latency per matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(ctx.Request.Method, route, ctx.Writer.Status(), time.Since(start))
	}
}
