package handlers_test

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, cred domain.Credential) (*domain.AuthResult, error) {
	args := m.Called(ctx, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.AuthResult, error) {
	args := m.Called(ctx, resetToken, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}
func (m *MockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return m.Called(ctx, userID, currentPassword, newPassword).Error(0)
}
func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock OAuthService ---
type MockOAuthService struct {
	mock.Mock
}

func (m *MockOAuthService) Enabled(provider domain.AuthProvider) bool {
	return m.Called(provider).Bool(0)
}
func (m *MockOAuthService) BeginLogin(ctx context.Context, provider domain.AuthProvider) (*domain.OAuthStart, error) {
	args := m.Called(ctx, provider)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthStart), args.Error(1)
}
func (m *MockOAuthService) CompleteLogin(ctx context.Context, provider domain.AuthProvider, code, verifier string) (*domain.OAuthProfile, error) {
	args := m.Called(ctx, provider, code, verifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthProfile), args.Error(1)
}

var _ portssvc.OAuthSvcFacade = (*MockOAuthService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock PreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetPreferences(ctx context.Context, userID string) (*domain.Preference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}
func (m *MockPreferenceService) UpdatePreferences(ctx context.Context, userID string, update domain.PreferenceUpdate) (*domain.Preference, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

var _ portssvc.PreferenceSvcFacade = (*MockPreferenceService)(nil)

// --- Mock ArticleService ---
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) ListArticles(ctx context.Context, filter domain.ArticleFilter, page domain.Page) (*domain.ArticlePage, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticlePage), args.Error(1)
}
func (m *MockArticleService) SearchArticles(ctx context.Context, q string, page domain.Page) (*domain.ArticlePage, error) {
	args := m.Called(ctx, q, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticlePage), args.Error(1)
}
func (m *MockArticleService) PersonalizedArticles(ctx context.Context, userID string, page domain.Page) (*domain.ArticlePage, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticlePage), args.Error(1)
}
func (m *MockArticleService) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}
func (m *MockArticleService) IngestArticles(ctx context.Context, articles []domain.Article) (int64, error) {
	args := m.Called(ctx, articles)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.ArticleSvcFacade = (*MockArticleService)(nil)

// --- Mock SavedArticleService ---
type MockSavedArticleService struct {
	mock.Mock
}

func (m *MockSavedArticleService) SaveArticle(ctx context.Context, userID, articleID string) (*domain.SavedArticle, bool, error) {
	args := m.Called(ctx, userID, articleID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.SavedArticle), args.Bool(1), args.Error(2)
}
func (m *MockSavedArticleService) UnsaveArticle(ctx context.Context, userID, articleID string) error {
	return m.Called(ctx, userID, articleID).Error(0)
}
func (m *MockSavedArticleService) ListSavedArticles(ctx context.Context, userID string, page domain.Page) (*domain.SavedArticlePage, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedArticlePage), args.Error(1)
}
func (m *MockSavedArticleService) IsArticleSaved(ctx context.Context, userID, articleID string) (bool, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.SavedArticleSvcFacade = (*MockSavedArticleService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListActiveSources(ctx context.Context) ([]domain.NewsSource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.NewsSource), args.Error(1)
}
func (m *MockCatalogService) ListSourcesByAPISource(ctx context.Context, apiSource string) ([]domain.NewsSource, error) {
	args := m.Called(ctx, apiSource)
	return args.Get(0).([]domain.NewsSource), args.Error(1)
}
func (m *MockCatalogService) GetSourceByName(ctx context.Context, name string) (*domain.NewsSource, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsSource), args.Error(1)
}
func (m *MockCatalogService) CreateSource(ctx context.Context, req dto.CreateNewsSourceRequest) (*domain.NewsSource, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsSource), args.Error(1)
}
func (m *MockCatalogService) InitializeSources(ctx context.Context, reqs []dto.CreateNewsSourceRequest) (int64, error) {
	args := m.Called(ctx, reqs)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCatalogService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCatalogService) ValidateCategories(ctx context.Context, names []string) ([]string, []string, error) {
	args := m.Called(ctx, names)
	return args.Get(0).([]string), args.Get(1).([]string), args.Error(2)
}
func (m *MockCatalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock APILogService ---
type MockAPILogService struct {
	mock.Mock
}

func (m *MockAPILogService) RecordAPICall(ctx context.Context, req dto.CreateAPILogRequest) (*domain.APILog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.APILog), args.Error(1)
}
func (m *MockAPILogService) ListAPILogs(ctx context.Context, r domain.APILogRange) ([]domain.APILog, error) {
	args := m.Called(ctx, r)
	return args.Get(0).([]domain.APILog), args.Error(1)
}
func (m *MockAPILogService) GetAPIStats(ctx context.Context, days int) ([]domain.APILogStats, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]domain.APILogStats), args.Error(1)
}

var _ portssvc.APILogSvcFacade = (*MockAPILogService)(nil)

// --- Fake analytics sink ---
type recordingSink struct {
	events []string
}

func (s *recordingSink) Enqueue(distinctID string, event string, properties map[string]any) {
	s.events = append(s.events, distinctID+":"+event)
}
