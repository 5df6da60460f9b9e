package services

import (
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/platform/config"
	"github.com/SscSPs/news_aggregator_app/internal/platform/mail"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, hasher PasswordHasher, mailer mail.Mailer, oauthOpts ...OAuthOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The credential store is shared so every password write goes through one hasher.
	creds := NewCredentialStore(repos.UserRepo, hasher)

	container.Token = NewTokenService(TokenSettingsFromConfig(cfg))
	container.Auth = NewAuthService(repos.UserRepo, creds, container.Token, mailer)
	container.OAuth = NewOAuthService(cfg, oauthOpts...)
	container.User = NewUserService(repos.UserRepo, creds)

	container.Preference = NewPreferenceService(repos.PreferenceRepo)
	container.Article = NewArticleService(repos.ArticleRepo, container.Preference)
	container.SavedArticle = NewSavedArticleService(repos.SavedArticleRepo, repos.ArticleRepo)
	container.Catalog = NewCatalogService(repos.NewsSourceRepo, repos.CategoryRepo)
	container.APILog = NewAPILogService(repos.APILogRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade         = (*authService)(nil)
	_ portssvc.OAuthSvcFacade        = (*oauthService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.ArticleSvcFacade      = (*articleService)(nil)
	_ portssvc.SavedArticleSvcFacade = (*savedArticleService)(nil)
	_ PasswordHasher                 = (*utils.PasswordHasher)(nil)
)
