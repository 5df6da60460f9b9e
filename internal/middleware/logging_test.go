package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(base))
	r.GET("/ping", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), requestID)
	assert.Contains(t, buf.String(), "Request completed")
	assert.Contains(t, buf.String(), "inside handler")
}

func TestGetLoggerFromCtx_Fallback(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}
