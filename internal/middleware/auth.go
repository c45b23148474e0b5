package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware enforces the X-API-KEY header against the allowed
// key list. An empty list disables auth entirely.
func APIKeyMiddleware(allowedKeys []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedKeys))
	for _, k := range allowedKeys {
		allowed[k] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(allowed) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-KEY")
		if _, ok := allowed[key]; !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status": "error",
				"error":  "unauthorized",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
