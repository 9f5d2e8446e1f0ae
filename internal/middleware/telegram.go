package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"task-assistant/pkg/response"
	"task-assistant/pkg/telegram"
)

// TelegramSecret rejects webhook deliveries whose secret token header does
// not match. An empty secret accepts everything.
func (m Middleware) TelegramSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(telegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.TelegramSecret: invalid secret token from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
