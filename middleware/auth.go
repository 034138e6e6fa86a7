package middleware

import (
	"net/http"
	"strings"

	"maxcleaners/models"
	"maxcleaners/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Status:  http.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("identity", models.Identity{PhoneNumber: claims.PhoneNumber})
		c.Set("phone_number", claims.PhoneNumber)
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := GetIdentity(c)
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Status:  http.StatusForbidden,
				Message: "Caller identity not found",
			})
			c.Abort()
			return
		}

		if !identity.HasRole(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Status:  http.StatusForbidden,
				Message: "Access denied: Only admin can perform this action",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetIdentity returns the identity claim AuthMiddleware resolved for this
// request.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	val, exists := c.Get("identity")
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := val.(models.Identity)
	return identity, ok
}
