package middleware

import (
	"net/http"
	"strings"
	"ustadgee"
	"ustadgee/internal/api/models"
	"ustadgee/pkg"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg ustadgee.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Bearer token format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := pkg.ValidateToken(parts[1], cfg.JWTConfig.Secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userPhone", claims.PhoneNumber)
		c.Set("userTypeID", claims.UserTypeID)

		c.Next()
	}
}

// RequireServiceProvider restricts a route to ustadgee and karigar
// accounts.
func RequireServiceProvider() gin.HandlerFunc {
	return requireUserTypes(models.UserTypeUstadgee, models.UserTypeKarigar)
}

// RequireRequester restricts a route to regular user accounts.
func RequireRequester() gin.HandlerFunc {
	return requireUserTypes(models.UserTypeRequester)
}

func requireUserTypes(types ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userTypeID, exists := c.Get("userTypeID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User type not found"})
			c.Abort()
			return
		}

		typeID := userTypeID.(int)
		for _, allowed := range types {
			if typeID == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
		c.Abort()
	}
}
