package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-register-service/internal/metrics"
)

// Metrics records request counts and latencies labelled by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
