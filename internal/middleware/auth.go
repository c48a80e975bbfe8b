package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/task-manager-api/internal/auth"
	"github.com/yukikurage/task-manager-api/internal/constants"
	apierrors "github.com/yukikurage/task-manager-api/internal/errors"
)

const bearerPrefix = "Bearer "

// RequireAuth checks that the request carries a valid bearer token
func RequireAuth(tokens auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			apierrors.Unauthorized(c, "")
			return
		}

		principal, err := tokens.ValidateToken(c.Request.Context(), strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			apierrors.Unauthorized(c, err.Error())
			return
		}

		// Store the principal in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, principal.UserID)
		c.Set(constants.ContextKeyUserEmail, principal.Email)
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
