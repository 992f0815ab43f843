package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igiffrekt/MusqlApp-sub002/internal/infrastructure/ratelimit"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/logger"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/utils"
)

// RateLimit enforces a per-client-IP request budget over the limiter's
// window. When the backing store is unavailable requests pass through;
// blocking all traffic on a redis outage would be worse than briefly
// losing the limit.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err,
			)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
