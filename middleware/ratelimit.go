package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gamestore/cache"
)

// RateLimit implements per-client rate limiting over the Redis counter.
// Authenticated requests are keyed by username, anonymous ones by IP.
// When Redis is down requests pass through unthrottled.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cache.IsRedisAvailable() {
			c.Next()
			return
		}

		client := c.ClientIP()
		if claims := ClaimsFromContext(c); claims != nil {
			client = claims.Username
		}

		allowed, remaining, err := cache.CheckRateLimit(client, maxRequests, window)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Window", window.String())

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}

		c.Next()
	}
}
