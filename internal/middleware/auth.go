package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/promptgallery/backend/internal/services"
)

// ContextUserIDKey is where OptionalAuth stores the token identity.
const ContextUserIDKey = "auth_user_id"

// OptionalAuth extracts the bearer-token identity when one is present and
// valid. It never rejects the request: the API surface is public and the
// token only serves as a fallback identity for /generate.
func OptionalAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := authService.ValidateAccessToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated identity, if any.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
