package middleware

import (
	"log/slog"
	"net/http"

	"salon-queue/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit counts requests per client IP and route. With failOpen a limiter outage lets
// traffic through; otherwise it answers 503.
func RateLimit(limiter ratelimit.Limiter, failOpen bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()
		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter error", "error", err)
			if failOpen {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": gin.H{"message": "Rate limiter unavailable"},
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{"message": "Rate limit exceeded", "code": "RATE_LIMITED"},
			})
			return
		}
		c.Next()
	}
}
