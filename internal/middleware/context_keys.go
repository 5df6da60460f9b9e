package middleware

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is used for values stored in gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	loggerCtxKey = contextKey("ctxLogger")
	identityKey  = contextKey("identity")
)

// Identity is the authenticated caller attached by the auth middleware.
type Identity struct {
	UserID string
	Email  string
	Role   domain.Role
}

func setIdentity(c *gin.Context, id Identity) {
	c.Set(string(identityKey), id)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), identityKey, id))
}

// GetIdentity retrieves the authenticated caller from the Gin context.
func GetIdentity(c *gin.Context) (Identity, bool) {
	if v, exists := c.Get(string(identityKey)); exists {
		if id, ok := v.(Identity); ok {
			return id, true
		}
	}
	return IdentityFromCtx(c.Request.Context())
}

// IdentityFromCtx retrieves the authenticated caller from a request context.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	id, ok := GetIdentity(c)
	if !ok || id.UserID == "" {
		return "", false
	}
	return id.UserID, true
}
