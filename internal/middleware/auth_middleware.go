package middleware

import (
	"net/http"
	"strings"

	"girvi-backend/internal/auth"
	"girvi-backend/internal/database"
	"girvi-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// tokenFromRequest pulls the JWT from the Authorization header or,
// failing that, from the httpOnly "token" cookie set at login.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return token
		}
		return ""
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware checks the JWT and resolves the acting user. A token
// whose user no longer exists (or was soft-deleted) is rejected.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Soft-deleted users fall out of the default scope, so a removed
		// account can't keep using an old token.
		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User no longer active"})
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// RequireRole gates a route group to a single role.
func RequireRole(allowedRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != allowedRole {
			c.JSON(http.StatusForbidden, gin.H{"message": "You do not have permission to access this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}
