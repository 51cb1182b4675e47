package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"storefront-api/models"
	"storefront-api/utils"
)

// AuthMiddleware gates a route on a valid bearer token. It touches no
// storage; on success the decoded claims land in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		tokenParts := strings.Split(authHeader, " ")
		if authHeader == "" || len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Message: "Access denied, no token provided.",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(jwtSecret, tokenParts[1])
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: message,
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}
