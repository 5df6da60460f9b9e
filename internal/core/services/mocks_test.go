package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderFn func(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
	UpdateUserFn         func(ctx context.Context, user domain.User) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error) {
	if m.FindUserByProviderFn != nil {
		return m.FindUserByProviderFn(ctx, provider, providerID)
	}
	args := m.Called(ctx, provider, providerID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

// memoryUsers backs a MockUserRepository with a map so multi-step flows can be
// exercised without scripting every call.
type memoryUsers struct {
	mu    sync.Mutex
	byID  map[string]domain.User
	saves int
}

func newMemoryUserRepo() (*MockUserRepository, *memoryUsers) {
	store := &memoryUsers{byID: map[string]domain.User{}}
	repo := &MockUserRepository{
		FindUserByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			u, ok := store.byID[id]
			if !ok {
				return nil, apperrors.ErrNotFound
			}
			return &u, nil
		},
		FindUserByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			for _, u := range store.byID {
				if u.Email == email {
					u := u
					return &u, nil
				}
			}
			return nil, apperrors.ErrNotFound
		},
		FindUserByProviderFn: func(_ context.Context, p domain.AuthProvider, pid string) (*domain.User, error) {
			store.mu.Lock()
			defer store.mu.Unlock()
			for _, u := range store.byID {
				if u.ProviderID(p) == pid {
					u := u
					return &u, nil
				}
			}
			return nil, apperrors.ErrNotFound
		},
		SaveUserFn: func(_ context.Context, user domain.User) error {
			store.mu.Lock()
			defer store.mu.Unlock()
			for _, u := range store.byID {
				if u.Email == user.Email {
					return apperrors.NewConflictError("duplicate", "email")
				}
			}
			store.byID[user.ID] = user
			store.saves++
			return nil
		},
		UpdateUserFn: func(_ context.Context, user domain.User) error {
			store.mu.Lock()
			defer store.mu.Unlock()
			if _, ok := store.byID[user.ID]; !ok {
				return apperrors.ErrNotFound
			}
			for id, u := range store.byID {
				if id != user.ID && u.Email == user.Email {
					return apperrors.NewConflictError("duplicate", "email")
				}
			}
			store.byID[user.ID] = user
			return nil
		},
	}
	return repo, store
}

// get returns a copy of the stored user, or nil.
func (s *memoryUsers) get(id string) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &u
}

func (s *memoryUsers) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// --- Mock PreferenceRepository ---
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Preference, error) {
	args := m.Called(ctx, userID)
	var pref *domain.Preference
	if args.Get(0) != nil {
		pref = args.Get(0).(*domain.Preference)
	}
	return pref, args.Error(1)
}

func (m *MockPreferenceRepository) Upsert(ctx context.Context, pref domain.Preference) (*domain.Preference, error) {
	args := m.Called(ctx, pref)
	var out *domain.Preference
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.Preference)
	}
	return out, args.Error(1)
}

// --- Mock ArticleRepository ---
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) QueryArticles(ctx context.Context, query domain.ArticleQuery) (*domain.ArticlePage, error) {
	args := m.Called(ctx, query)
	var page *domain.ArticlePage
	if args.Get(0) != nil {
		page = args.Get(0).(*domain.ArticlePage)
	}
	return page, args.Error(1)
}

func (m *MockArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	args := m.Called(ctx, articleID)
	var a *domain.Article
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.Article)
	}
	return a, args.Error(1)
}

func (m *MockArticleRepository) BulkInsertArticles(ctx context.Context, articles []domain.Article) (int64, error) {
	args := m.Called(ctx, articles)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SavedArticleRepository ---
type MockSavedArticleRepository struct {
	mock.Mock
}

func (m *MockSavedArticleRepository) Save(ctx context.Context, saved domain.SavedArticle) (*domain.SavedArticle, bool, error) {
	args := m.Called(ctx, saved)
	var out *domain.SavedArticle
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.SavedArticle)
	}
	return out, args.Bool(1), args.Error(2)
}

func (m *MockSavedArticleRepository) Delete(ctx context.Context, userID, articleID string) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *MockSavedArticleRepository) ListForUser(ctx context.Context, userID string, page domain.Page) (*domain.SavedArticlePage, error) {
	args := m.Called(ctx, userID, page)
	var out *domain.SavedArticlePage
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.SavedArticlePage)
	}
	return out, args.Error(1)
}

func (m *MockSavedArticleRepository) Exists(ctx context.Context, userID, articleID string) (bool, error) {
	args := m.Called(ctx, userID, articleID)
	return args.Bool(0), args.Error(1)
}

// --- Mock NewsSourceRepository ---
type MockNewsSourceRepository struct {
	mock.Mock
}

func (m *MockNewsSourceRepository) ListActiveSources(ctx context.Context) ([]domain.NewsSource, error) {
	args := m.Called(ctx)
	var out []domain.NewsSource
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.NewsSource)
	}
	return out, args.Error(1)
}

func (m *MockNewsSourceRepository) ListSourcesByAPISource(ctx context.Context, apiSource string) ([]domain.NewsSource, error) {
	args := m.Called(ctx, apiSource)
	var out []domain.NewsSource
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.NewsSource)
	}
	return out, args.Error(1)
}

func (m *MockNewsSourceRepository) FindSourceByName(ctx context.Context, name string) (*domain.NewsSource, error) {
	args := m.Called(ctx, name)
	var out *domain.NewsSource
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.NewsSource)
	}
	return out, args.Error(1)
}

func (m *MockNewsSourceRepository) SaveSource(ctx context.Context, source domain.NewsSource) error {
	args := m.Called(ctx, source)
	return args.Error(0)
}

func (m *MockNewsSourceRepository) BulkInsertSources(ctx context.Context, sources []domain.NewsSource) (int64, error) {
	args := m.Called(ctx, sources)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var out []domain.Category
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Category)
	}
	return out, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	var out *domain.Category
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.Category)
	}
	return out, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByNames(ctx context.Context, names []string) ([]domain.Category, error) {
	args := m.Called(ctx, names)
	var out []domain.Category
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Category)
	}
	return out, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Mock APILogRepository ---
type MockAPILogRepository struct {
	mock.Mock
}

func (m *MockAPILogRepository) SaveAPILog(ctx context.Context, log domain.APILog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAPILogRepository) FindAPILogsByRange(ctx context.Context, r domain.APILogRange) ([]domain.APILog, error) {
	args := m.Called(ctx, r)
	var out []domain.APILog
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.APILog)
	}
	return out, args.Error(1)
}

func (m *MockAPILogRepository) AggregateAPILogs(ctx context.Context, since time.Time) ([]domain.APILogStats, error) {
	args := m.Called(ctx, since)
	var out []domain.APILogStats
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.APILogStats)
	}
	return out, args.Error(1)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, to, token string) error {
	args := m.Called(ctx, to, token)
	return args.Error(0)
}
