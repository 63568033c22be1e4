package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"missed-call-recovery/pkg/response"
)

const internalKeyHeader = "X-Internal-Key"

// Auth gates dashboard routes behind the shared internal key. An empty
// configured key disables the gate for local development.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" {
			c.Set("user_id", "dashboard")
			c.Next()
			return
		}

		key := c.GetHeader(internalKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "auth: rejected request to %s from %s", c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user_id", "dashboard")
		c.Next()
	}
}
