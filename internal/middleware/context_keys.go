package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mamunbank/bank_trainer_app/internal/core/domain"
)

const (
	userIDKey   = contextKey("userID")
	userNameKey = contextKey("userName")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated trainee id set by the auth
// middleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), userIDKey)
}

// GetUserNameFromContext retrieves the trainee display name.
func GetUserNameFromContext(c *gin.Context) (string, bool) {
	return stringFromCtx(c.Request.Context(), userNameKey)
}

// GetUserRoleFromContext retrieves the trainee role.
func GetUserRoleFromContext(c *gin.Context) (domain.Role, bool) {
	v, ok := stringFromCtx(c.Request.Context(), userRoleKey)
	return domain.Role(v), ok
}

// SessionUserFromContext rebuilds the session user from the token claims the
// auth middleware stored in the request context.
func SessionUserFromContext(c *gin.Context) (domain.User, bool) {
	id, okID := GetUserIDFromContext(c)
	name, _ := GetUserNameFromContext(c)
	role, okRole := GetUserRoleFromContext(c)
	if !okID || !okRole {
		return domain.User{}, false
	}
	return domain.User{UserID: id, Name: name, Role: role}, true
}

// RequireRoles aborts with 403 unless the trainee holds one of the given
// roles. Must run after AuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted for route", "role", string(role), "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
	}
}

func stringFromCtx(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
