package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware tracks successful authenticated API calls.
func PosthogMiddleware(sink utils.EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/articles/:id" -> "api_articles_:id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		sink.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event for the authenticated caller, if any.
func PosthogEvent(c *gin.Context, sink utils.EventSink, eventName string, properties map[string]any) {
	if sink == nil {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path
	sink.Enqueue(userID, eventName, properties)
}
