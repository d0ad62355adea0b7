package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-hiring-portal/internal/delivery/http/response"
	"go-hiring-portal/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// SignInRateLimit caps sign-in attempts per client IP with a fixed window
// counter in Redis. With no Redis client the middleware is a no-op; an
// unreachable Redis also fails open so auth never depends on it.
func SignInRateLimit(client *goredis.Client, threshold int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:signin:%s", c.ClientIP())

		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			logger.Log.Warn("rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, window)
		}

		if count > int64(threshold) {
			response.Error(c, http.StatusTooManyRequests, "Too many sign-in attempts. Try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
