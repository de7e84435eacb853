package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Salmayasser12/Sweet-Corner/config"
	"github.com/Salmayasser12/Sweet-Corner/models"
)

// RateLimiter counts requests per IP, per method, per endpoint over a
// fixed window in Redis, and exposes the current rate state to handlers
// via the gin context.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// First request of the window → set expiry and a stable resetAt
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
			config.RedisClient.Set(config.Ctx, resetKey, time.Now().Add(window).Unix(), window)
		}

		resetAtUnix, _ := config.RedisClient.Get(config.Ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      clampAtZero(maxRequests - int(count)),
			ResetAt:        resetAt,
			ResetInSeconds: clampAtZero(int(time.Until(resetAt).Seconds())),
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func clampAtZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
