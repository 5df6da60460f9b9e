package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/gin-gonic/gin"
)

const (
	msgUnauthorized = "Unauthorized - Invalid or expired token"
	msgForbidden    = "Forbidden - Insufficient permissions"
)

var errNoBearer = errors.New("authorization header missing or not bearer")

// RequireAuth rejects requests without a valid access token for an existing user.
func RequireAuth(auth portssvc.AuthenticatorSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, auth); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("Authentication failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(msgUnauthorized))
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present and always continues.
func OptionalAuth(auth portssvc.AuthenticatorSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, auth); err != nil && !errors.Is(err, errNoBearer) {
			GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid optional token", slog.String("error", err.Error()))
		}
		c.Next()
	}
}

// RequireRoles must run after RequireAuth. It answers 401 when no identity is
// attached and 403 when the caller's role is not listed. Both cases abort.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(msgUnauthorized))
			return
		}
		if _, permitted := allowed[id.Role]; !permitted {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role not permitted",
				slog.String("role", string(id.Role)), slog.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail(msgForbidden))
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, auth portssvc.AuthenticatorSvc) error {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return errNoBearer
	}
	res, err := auth.Authenticate(c.Request.Context(), domain.BearerCredential{Token: token})
	if err != nil {
		return err
	}
	setIdentity(c, Identity{UserID: res.User.ID, Email: res.User.Email, Role: res.User.Role})

	enriched := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", res.User.ID))
	c.Set(string(loggerKey), enriched)
	c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enriched))
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
