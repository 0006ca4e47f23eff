package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var rlClient *redis.Client

// InitRateLimiter shares the application's Redis client with the rate
// limiter. With a nil client the limiter is a no-op (fail-open).
func InitRateLimiter(client *redis.Client) {
	rlClient = client
}

// RateLimit is a fixed-window limiter keyed by client IP, implemented
// with Redis INCR/EXPIRE. Redis errors fail open so an unavailable
// Redis never takes the API down.
func RateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rlClient == nil {
			c.Next()
			return
		}

		key := "rl:" + strconv.FormatInt(int64(window.Seconds()), 10) + ":" + c.ClientIP()
		ctx := c.Request.Context()

		val, err := rlClient.Incr(ctx, key).Result()
		if err != nil {
			c.Header("X-RateLimit-Error", "redis-error")
			c.Next()
			return
		}
		if val == 1 {
			rlClient.Expire(ctx, key, window)
		}

		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"sucesso": false, "erro": "Limite de requisições excedido"})
			return
		}

		c.Next()
	}
}
