package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"spa-backend/utils"
)

// AdminAuth guards the admin panel routes with the JWT issued at login.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "Bearer ") {
			tokenString = tokenString[7:]
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("adminId", claims["sub"])
		c.Set("adminEmail", claims["email"])
		c.Next()
	}
}
