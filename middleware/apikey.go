package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-api/models"
)

// APIKeyMiddleware is a coarse shared-secret gate, independent of the
// bearer-token scheme. Only the registration route carries it.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" || key != apiKey {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "Unauthorized: Invalid API Key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
