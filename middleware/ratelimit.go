package middleware

import (
	"fmt"
	"time"

	"github.com/Aravind-728/PayStream/config"
	"github.com/Aravind-728/PayStream/utils"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies a fixed-window per-IP limit backed by Redis.
// The public checkout endpoints are unauthenticated, so this is the only
// brake on abusive traffic. When Redis is not configured the middleware is a
// pass-through.
func RateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client := config.RedisClient
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())
		ctx := c.Request.Context()

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Rate limiting must not take the checkout down with it.
			utils.LogError("Rate limit INCR failed: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := client.Expire(ctx, key, window).Err(); err != nil {
				utils.LogError("Rate limit EXPIRE failed: %v", err)
			}
		}

		if count > int64(limit) {
			utils.LogInfo("Rate limit exceeded for %s on %s", c.ClientIP(), c.FullPath())
			utils.TooManyRequests(c, "Too many requests, slow down")
			c.Abort()
			return
		}

		c.Next()
	}
}
