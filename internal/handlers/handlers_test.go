package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/SscSPs/news_aggregator_app/internal/handlers"
	"github.com/SscSPs/news_aggregator_app/internal/platform/config"
	"github.com/SscSPs/news_aggregator_app/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	userToken   = "user-access-token"
	adminToken  = "admin-access-token"
	frontendURL = "http://frontend.test"
)

type fakeHealth struct{ status database.Status }

func (f fakeHealth) Status() database.Status { return f.status }

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cfg       *config.Config
	auth      *MockAuthService
	oauth     *MockOAuthService
	users     *MockUserService
	prefs     *MockPreferenceService
	articles  *MockArticleService
	saved     *MockSavedArticleService
	catalog   *MockCatalogService
	apiLogs   *MockAPILogService
	analytics *recordingSink
	health    fakeHealth

	user  *domain.User
	admin *domain.User
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		IsProduction:       true,
		FrontendBaseURL:    frontendURL,
		CORSAllowedOrigins: []string{frontendURL},
		LoginRateLimit:     "1000-M",
	}
	suite.auth = new(MockAuthService)
	suite.oauth = new(MockOAuthService)
	suite.users = new(MockUserService)
	suite.prefs = new(MockPreferenceService)
	suite.articles = new(MockArticleService)
	suite.saved = new(MockSavedArticleService)
	suite.catalog = new(MockCatalogService)
	suite.apiLogs = new(MockAPILogService)
	suite.analytics = &recordingSink{}
	suite.health = fakeHealth{status: database.Status{Connected: true, CheckedAt: time.Now()}}

	suite.user = &domain.User{ID: "user-1", Email: "reader@example.com", Name: "Reader", Role: domain.RoleUser}
	suite.admin = &domain.User{ID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: domain.RoleAdmin}
	suite.auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: userToken}).
		Return(&domain.AuthResult{User: suite.user}, nil).Maybe()
	suite.auth.On("Authenticate", mock.Anything, domain.BearerCredential{Token: adminToken}).
		Return(&domain.AuthResult{User: suite.admin}, nil).Maybe()
	suite.auth.On("Authenticate", mock.Anything, mock.AnythingOfType("domain.BearerCredential")).
		Return(nil, apperrors.ErrInvalidToken).Maybe()

	suite.buildRouter()
}

func (suite *HandlersTestSuite) buildRouter() {
	suite.router = gin.New()
	err := handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Auth:         suite.auth,
		OAuth:        suite.oauth,
		User:         suite.users,
		Preference:   suite.prefs,
		Article:      suite.articles,
		SavedArticle: suite.saved,
		Catalog:      suite.catalog,
		APILog:       suite.apiLogs,
	}, handlers.Options{Health: suite.health, Analytics: suite.analytics})
	suite.Require().NoError(err)
}

func (suite *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func (suite *HandlersTestSuite) authResult() *domain.AuthResult {
	return &domain.AuthResult{User: suite.user, TokenPair: domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}}
}

// --- Auth ---

func (suite *HandlersTestSuite) TestRegister_Success() {
	suite.auth.On("Register", mock.Anything, "reader@example.com", "Str0ngPass", "Reader").
		Return(suite.authResult(), nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "reader@example.com", "password": "Str0ngPass", "name": "Reader",
	})

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal(true, body["success"])
	data := body["data"].(map[string]any)
	suite.Equal("access", data["token"])
	suite.Equal("refresh", data["refreshToken"])
	suite.Equal("reader@example.com", data["user"].(map[string]any)["email"])
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlersTestSuite) TestRegister_WeakPassword() {
	w := suite.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "reader@example.com", "password": "alllowercase",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("Validation errors", body["message"])
	fields := body["errors"].([]any)
	suite.Require().Len(fields, 1)
	suite.Equal("password", fields[0].(map[string]any)["field"])
	suite.auth.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRegister_MultiBytePasswordOverBcryptLimit() {
	// 72 characters but 141 bytes.
	password := "Aa1" + strings.Repeat("é", 69)

	w := suite.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "long@example.com", "password": password, "name": "Long",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	fields := suite.decode(w)["errors"].([]any)
	suite.Require().Len(fields, 1)
	suite.Equal("password", fields[0].(map[string]any)["field"])
	suite.auth.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRegister_Duplicate() {
	suite.auth.On("Register", mock.Anything, "reader@example.com", "Str0ngPass", "").
		Return(nil, apperrors.NewConflictError("User with this email already exists", "email")).Once()

	w := suite.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "reader@example.com", "password": "Str0ngPass",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("User with this email already exists", suite.decode(w)["message"])
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentials() {
	suite.auth.On("Authenticate", mock.Anything, domain.LocalCredential{Email: "reader@example.com", Password: "nope"}).
		Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "reader@example.com", "password": "nope"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	body := suite.decode(w)
	suite.Equal(false, body["success"])
	suite.Equal("Invalid email or password", body["message"])
}

func (suite *HandlersTestSuite) TestLogin_Success() {
	suite.auth.On("Authenticate", mock.Anything, domain.LocalCredential{Email: "reader@example.com", Password: "Str0ngPass"}).
		Return(suite.authResult(), nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "reader@example.com", "password": "Str0ngPass"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Login successful", suite.decode(w)["message"])
	suite.Contains(suite.analytics.events, "user-1:user_logged_in")
}

func (suite *HandlersTestSuite) TestForgotPassword_IndistinguishableResponses() {
	suite.auth.On("ForgotPassword", mock.Anything, "reader@example.com").Return("reset-token", nil).Once()
	suite.auth.On("ForgotPassword", mock.Anything, "ghost@example.com").Return("", nil).Once()

	known := suite.do(http.MethodPost, "/api/auth/forgot-password", "", gin.H{"email": "reader@example.com"})
	unknown := suite.do(http.MethodPost, "/api/auth/forgot-password", "", gin.H{"email": "ghost@example.com"})

	suite.Equal(http.StatusOK, known.Code)
	suite.Equal(known.Code, unknown.Code)
	suite.JSONEq(known.Body.String(), unknown.Body.String())
	suite.NotContains(known.Body.String(), "reset-token")
}

func (suite *HandlersTestSuite) TestForgotPassword_DevExposesToken() {
	suite.cfg.DevExposeResetToken = true
	suite.buildRouter()
	suite.auth.On("ForgotPassword", mock.Anything, "reader@example.com").Return("reset-token", nil).Once()

	w := suite.do(http.MethodPost, "/api/auth/forgot-password", "", gin.H{"email": "reader@example.com"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("reset-token", suite.decode(w)["data"].(map[string]any)["resetToken"])
}

func (suite *HandlersTestSuite) TestResetPassword_MismatchedConfirmation() {
	w := suite.do(http.MethodPost, "/api/auth/reset-password", "", gin.H{
		"token": "t", "newPassword": "Str0ngPass", "confirmPassword": "Different1",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Passwords do not match")
}

func (suite *HandlersTestSuite) TestRefreshToken() {
	suite.auth.On("Refresh", mock.Anything, "refresh").Return(suite.authResult(), nil).Once()
	suite.auth.On("Refresh", mock.Anything, "access").Return(nil, apperrors.ErrInvalidToken).Once()

	w := suite.do(http.MethodPost, "/api/auth/refresh-token", "", gin.H{"refreshToken": "refresh"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("access", suite.decode(w)["data"].(map[string]any)["token"])

	w = suite.do(http.MethodPost, "/api/auth/refresh-token", "", gin.H{"refreshToken": "access"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid or expired token", suite.decode(w)["message"])
}

func (suite *HandlersTestSuite) TestMe() {
	suite.users.On("GetUserByID", mock.Anything, "user-1").Return(suite.user, nil).Once()

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/auth/me", "", nil).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/auth/me", "forged", nil).Code)

	w := suite.do(http.MethodGet, "/api/auth/me", userToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	user := suite.decode(w)["data"].(map[string]any)["user"].(map[string]any)
	suite.Equal("user-1", user["id"])
	suite.Contains(suite.analytics.events, "user-1:api_auth_me")
}

func (suite *HandlersTestSuite) TestChangePassword_WrongCurrent() {
	suite.auth.On("ChangePassword", mock.Anything, "user-1", "Wrong1234", "N3wPassword").
		Return(apperrors.NewUnauthorizedError("Current password is incorrect")).Once()

	w := suite.do(http.MethodPut, "/api/auth/change-password", userToken, gin.H{
		"currentPassword": "Wrong1234", "newPassword": "N3wPassword", "confirmPassword": "N3wPassword",
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Current password is incorrect", suite.decode(w)["message"])
}

// --- OAuth ---

func (suite *HandlersTestSuite) TestOAuth_RoundTrip() {
	suite.oauth.On("BeginLogin", mock.Anything, domain.ProviderGoogle).
		Return(&domain.OAuthStart{URL: "https://accounts.example/auth?state=s1", State: "s1"}, nil).Once()
	profile := &domain.OAuthProfile{Provider: domain.ProviderGoogle, ProviderID: "g-1", Email: "reader@example.com"}
	suite.oauth.On("CompleteLogin", mock.Anything, domain.ProviderGoogle, "code-1", "").Return(profile, nil).Once()
	suite.auth.On("Authenticate", mock.Anything, domain.OAuthCredential{Profile: *profile}).Return(suite.authResult(), nil).Once()

	begin := suite.do(http.MethodGet, "/api/auth/google", "", nil)
	suite.Equal(http.StatusFound, begin.Code)
	suite.Equal("https://accounts.example/auth?state=s1", begin.Header().Get("Location"))
	cookies := begin.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	suite.NotEqual("s1", cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?code=code-1&state=s1", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(loc.String(), frontendURL+"/auth/callback?"))
	suite.Equal("access", loc.Query().Get("token"))
	suite.Equal("refresh", loc.Query().Get("refreshToken"))
}

func (suite *HandlersTestSuite) TestOAuth_StateMismatch() {
	w := suite.do(http.MethodGet, "/api/auth/facebook/callback?code=x&state=forged", "", nil)

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal(frontendURL+"/auth/callback?error=invalid_state", w.Header().Get("Location"))
	suite.oauth.AssertNotCalled(suite.T(), "CompleteLogin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestOAuth_DisabledProvider() {
	suite.oauth.On("BeginLogin", mock.Anything, domain.ProviderTwitter).
		Return(nil, apperrors.NewNotFoundError("twitter login is not configured")).Once()

	w := suite.do(http.MethodGet, "/api/auth/twitter", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Articles ---

func (suite *HandlersTestSuite) TestListArticles_DateOnlyEndIsInclusive() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 23, 59, 59, 999999999, time.UTC)
	filter := domain.ArticleFilter{Category: "technology", StartDate: &start, EndDate: &end}
	suite.articles.On("ListArticles", mock.Anything, filter, domain.NewPage(20, 0)).
		Return(&domain.ArticlePage{Articles: []domain.Article{}, Limit: 20}, nil).Once()

	w := suite.do(http.MethodGet, "/api/articles?category=technology&startDate=2024-03-01&endDate=2024-03-02", "", nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	data := suite.decode(w)["data"].(map[string]any)
	suite.Equal([]any{}, data["articles"])
}

func (suite *HandlersTestSuite) TestListArticles_InvertedRange() {
	w := suite.do(http.MethodGet, "/api/articles?startDate=2024-03-02&endDate=2024-03-01", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "endDate")
}

func (suite *HandlersTestSuite) TestListArticles_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/articles?limit=500", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), `"field":"limit"`)
}

func (suite *HandlersTestSuite) TestSearch_TooShort() {
	w := suite.do(http.MethodGet, "/api/articles/search?q=a", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPersonalized_RequiresAuth() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/articles/personalized", "", nil).Code)

	suite.articles.On("PersonalizedArticles", mock.Anything, "user-1", domain.NewPage(5, 0)).
		Return(&domain.ArticlePage{Articles: []domain.Article{{ID: "a1", Title: "Hello"}}, Total: 1, Limit: 5}, nil).Once()
	w := suite.do(http.MethodGet, "/api/articles/personalized?limit=5", userToken, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.EqualValues(1, suite.decode(w)["data"].(map[string]any)["total"])
}

func (suite *HandlersTestSuite) TestGetArticle_SavedFlagOnlyWhenAuthenticated() {
	article := &domain.Article{ID: "a1", Title: "Hello", SourceName: "bbc-news", URL: "https://example.com/a1"}
	suite.articles.On("GetArticleByID", mock.Anything, "a1").Return(article, nil)
	suite.saved.On("IsArticleSaved", mock.Anything, "user-1", "a1").Return(true, nil).Once()

	anon := suite.decode(suite.do(http.MethodGet, "/api/articles/a1", "", nil))["data"].(map[string]any)
	suite.NotContains(anon, "isSaved")

	authed := suite.decode(suite.do(http.MethodGet, "/api/articles/a1", userToken, nil))["data"].(map[string]any)
	suite.Equal(true, authed["isSaved"])

	// An invalid optional token is ignored rather than rejected.
	w := suite.do(http.MethodGet, "/api/articles/a1", "forged", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestBulkInsert_AdminOnly() {
	payload := dto.BulkArticlesRequest{Articles: []dto.CreateArticleRequest{{
		Title: "Hello", SourceName: "bbc-news", URL: "https://example.com/a1", PublishedAt: time.Now().UTC(),
	}}}

	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/articles/bulk", userToken, payload).Code)

	suite.articles.On("IngestArticles", mock.Anything, mock.MatchedBy(func(a []domain.Article) bool {
		return len(a) == 1 && a[0].URL == "https://example.com/a1"
	})).Return(int64(1), nil).Once()
	w := suite.do(http.MethodPost, "/api/articles/bulk", adminToken, payload)
	suite.Equal(http.StatusCreated, w.Code)
	suite.EqualValues(1, suite.decode(w)["data"].(map[string]any)["inserted"])
}

// --- Preferences & saved articles ---

func (suite *HandlersTestSuite) TestUpdatePreferences_PartialBody() {
	categories := []string{"technology"}
	suite.prefs.On("UpdatePreferences", mock.Anything, "user-1", domain.PreferenceUpdate{PreferredCategories: &categories}).
		Return(&domain.Preference{UserID: "user-1", PreferredCategories: categories}, nil).Once()

	w := suite.do(http.MethodPut, "/api/preferences", userToken, gin.H{"preferred_categories": categories})

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	pref := suite.decode(w)["data"].(map[string]any)["preference"].(map[string]any)
	suite.Equal([]any{"technology"}, pref["preferred_categories"])
	suite.Equal([]any{}, pref["preferred_sources"])
}

func (suite *HandlersTestSuite) TestSaveArticle_Idempotent() {
	saved := &domain.SavedArticle{ID: "s1", UserID: "user-1", ArticleID: "a1", SavedAt: time.Now()}
	suite.saved.On("SaveArticle", mock.Anything, "user-1", "a1").Return(saved, true, nil).Once()
	suite.saved.On("SaveArticle", mock.Anything, "user-1", "a1").Return(saved, false, nil).Once()

	first := suite.do(http.MethodPost, "/api/saved-articles/a1", userToken, nil)
	second := suite.do(http.MethodPost, "/api/saved-articles/a1", userToken, nil)

	suite.Equal(http.StatusCreated, first.Code)
	suite.Equal(http.StatusOK, second.Code)
	suite.Equal("s1", suite.decode(second)["data"].(map[string]any)["id"])
}

func (suite *HandlersTestSuite) TestUnsaveArticle_NotFound() {
	suite.saved.On("UnsaveArticle", mock.Anything, "user-1", "a1").
		Return(apperrors.NewNotFoundError("Saved article not found")).Once()

	w := suite.do(http.MethodDelete, "/api/saved-articles/a1", userToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Saved article not found", suite.decode(w)["message"])
}

// --- Catalog & admin ---

func (suite *HandlersTestSuite) TestCreateCategory_RoleGate() {
	req := dto.CreateCategoryRequest{Name: "science", DisplayName: "Science"}
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/categories", "", req).Code)
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/categories", userToken, req).Code)

	suite.catalog.On("CreateCategory", mock.Anything, req).
		Return(&domain.Category{ID: "c1", Name: "science", DisplayName: "Science"}, nil).Once()
	w := suite.do(http.MethodPost, "/api/categories", adminToken, req)
	suite.Equal(http.StatusCreated, w.Code)
	suite.catalog.AssertNumberOfCalls(suite.T(), "CreateCategory", 1)
}

func (suite *HandlersTestSuite) TestListSources_ByAPISource() {
	suite.catalog.On("ListSourcesByAPISource", mock.Anything, "newsapi").
		Return([]domain.NewsSource{{ID: "s1", Name: "bbc-news", APISource: "newsapi", IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/sources?apiSource=newsapi", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Len(suite.decode(w)["data"].([]any), 1)
	suite.catalog.AssertNotCalled(suite.T(), "ListActiveSources", mock.Anything)
}

func (suite *HandlersTestSuite) TestAPILogs() {
	suite.apiLogs.On("GetAPIStats", mock.Anything, 7).Return([]domain.APILogStats{}, nil).Once()
	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/admin/api-logs/stats", userToken, nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/admin/api-logs/stats", adminToken, nil).Code)

	w := suite.do(http.MethodGet, "/api/admin/api-logs?startDate=2024-03-01", adminToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Health ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, suite.decode(w)["connected"])

	suite.health = fakeHealth{status: database.Status{Connected: false, LastError: "connection refused"}}
	suite.buildRouter()
	w = suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("connection refused", suite.decode(w)["lastError"])
}
