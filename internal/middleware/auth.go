package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"taskmanager/internal/constants"
	apierrors "taskmanager/internal/errors"
	"taskmanager/internal/services"
)

// RequireAuth validates the bearer token and resolves its subject to a
// persisted user. The identity is derived once per request and stored in
// the context for the handlers.
func RequireAuth(authService *services.AuthService, tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		email, err := tokens.Parse(token)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := authService.CurrentUser(email)
		if err != nil {
			apierrors.Unauthorized(c, "Token subject no longer exists")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUserEmail, user.Email)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
