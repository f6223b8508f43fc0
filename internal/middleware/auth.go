package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iwantdrugsxd/evea-sub002/internal/auth"
)

// Context keys for authenticated request metadata.
const (
	UserIDKey = "user_id"
	EmailKey  = "email"
)

// GetUserID extracts the authenticated user id, empty if unauthenticated.
func GetUserID(c *gin.Context) string {
	id, _ := c.Get(UserIDKey)
	s, _ := id.(string)
	return s
}

// GetEmail extracts the authenticated user's email.
func GetEmail(c *gin.Context) string {
	email, _ := c.Get(EmailKey)
	s, _ := email.(string)
	return s
}

// RequireAuth validates the Bearer token and stores the user's identity
// on the request context, aborting with 401 otherwise.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrMissingToken.Error()})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidToken.Error()})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}
