package middleware

import (
	"net/http"
	"strings"

	"matchmaker_backend/internal/auth"
	"matchmaker_backend/internal/logger"
	"matchmaker_backend/internal/models"
	"matchmaker_backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Key under which the verified token email is stored in gin.Context.
const UserEmailKey = "userEmail"

// AuthMiddleware - JWT verification gate. Rejects before any storage
// access: a missing or invalid bearer token never reaches the store.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		// Claims into both gin context and the request context (logging)
		c.Set(UserEmailKey, claims.Email)
		ctx := logger.WithUserEmail(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminMiddleware - administrator gate. The role is re-read from the
// store on every request; a token claim is never trusted for privilege,
// so a revoked admin loses access immediately.
func AdminMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), email)
		if err != nil || user.Role != models.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Next()
	}
}

// RequireSelfParam - ownership gate for self-service lookups: the email
// path parameter must match the token identity, so one authenticated
// user cannot probe another's status.
func RequireSelfParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param(param)
		if email == "" || email != GetUserEmail(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}
		c.Next()
	}
}

// GetUserEmail extracts the verified token email from the context.
func GetUserEmail(c *gin.Context) string {
	emailVal, exists := c.Get(UserEmailKey)
	if !exists {
		return ""
	}

	email, ok := emailVal.(string)
	if !ok {
		return ""
	}

	return email
}
