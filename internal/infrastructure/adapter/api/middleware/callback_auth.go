package middleware

import (
	"crypto/subtle"
	"net/http"

	coreport "github.com/upendo-clinic/donation-ledger/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// CallbackAuth rejects callback deliveries that don't carry the shared
// secret in the URL. The Daraja callback URL is registered with the secret
// as a query parameter, so only the partner knows the full path. When no
// secret is configured the guard is disabled.
func CallbackAuth(secret string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		provided := c.Query("secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			logger.Warn("Callback delivery rejected, bad or missing secret", map[string]any{
				"path":      c.Request.URL.Path,
				"client_ip": c.ClientIP(),
			})
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
