package middleware

import (
	"net/http"
	"time"

	mem "budgy/pkg/memcache"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit allows at most maxAttempts requests per client IP inside
// window and answers 429 beyond that. Rejected requests count too.
func LoginRateLimit(store mem.LoginAttemptStore, maxAttempts int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxAttempts <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if store.Hit(ip, window) > maxAttempts {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			store.Reset(ip)
		}
	}
}
