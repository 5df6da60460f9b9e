package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, cred domain.Credential) (*domain.AuthResult, error) {
	args := m.Called(ctx, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", append(handlers, func(c *gin.Context) {
		id, ok := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok, "userId": id.UserID})
	})...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	auth := new(mockAuthenticator)
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser}
	auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: "good"}).Return(&domain.AuthResult{User: user}, nil)
	auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: "bad"}).Return(nil, apperrors.ErrInvalidToken)

	r := newRouter(middleware.RequireAuth(auth))

	t.Run("valid token", func(t *testing.T) {
		w := do(r, "Bearer good")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":"u1"`)
	})

	for name, header := range map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic good",
		"invalid token":  "Bearer bad",
		"empty token":    "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			w := do(r, header)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Unauthorized - Invalid or expired token", body["message"])
		})
	}
}

func TestOptionalAuth_AlwaysContinues(t *testing.T) {
	auth := new(mockAuthenticator)
	auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: "bad"}).Return(nil, apperrors.ErrInvalidToken)
	r := newRouter(middleware.OptionalAuth(auth))

	w := do(r, "Bearer bad")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	w = do(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	auth.AssertNumberOfCalls(t, "Authenticate", 1)
}

func TestRequireRoles(t *testing.T) {
	auth := new(mockAuthenticator)
	auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: "user"}).
		Return(&domain.AuthResult{User: &domain.User{ID: "u1", Role: domain.RoleUser}}, nil)
	auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: "admin"}).
		Return(&domain.AuthResult{User: &domain.User{ID: "a1", Role: domain.RoleAdmin}}, nil)

	r := newRouter(middleware.RequireAuth(auth), middleware.RequireRoles(domain.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, do(r, "Bearer user").Code)
	assert.Equal(t, http.StatusOK, do(r, "Bearer admin").Code)

	// Without an identity the gate answers 401, not 403.
	bare := newRouter(middleware.RequireRoles(domain.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, do(bare, "").Code)
}
