package services

import (
	"context"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// TokenSvcFacade issues and verifies the three token kinds.
type TokenSvcFacade interface {
	IssueAccess(user *domain.User) (string, error)
	IssueRefresh(user *domain.User) (string, error)
	IssueReset(user *domain.User) (string, error)
	// IssuePair issues an access and a refresh token together.
	IssuePair(user *domain.User) (domain.TokenPair, error)

	// VerifyAccess rejects tokens that carry any type tag.
	VerifyAccess(token string) (*domain.TokenClaims, error)
	VerifyRefresh(token string) (*domain.TokenClaims, error)
	VerifyReset(token string) (*domain.TokenClaims, error)
}

// AuthenticatorSvc resolves any credential variant into an authenticated user.
type AuthenticatorSvc interface {
	// Authenticate returns tokens for local and OAuth credentials.
	// A bearer credential resolves the user only and leaves the tokens empty.
	Authenticate(ctx context.Context, cred domain.Credential) (*domain.AuthResult, error)
}

// AccountRecoverySvc covers the password lifecycle.
type AccountRecoverySvc interface {
	// ForgotPassword returns the reset token for a known email and "" otherwise.
	// Callers must not reveal which case occurred.
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.AuthResult, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// AuthSvcFacade combines all authentication operations used by the handlers.
type AuthSvcFacade interface {
	AuthenticatorSvc
	AccountRecoverySvc
	Register(ctx context.Context, email, password, name string) (*domain.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
}

// OAuthSvcFacade drives the provider side of an OAuth login.
type OAuthSvcFacade interface {
	Enabled(provider domain.AuthProvider) bool
	// BeginLogin creates the state (and PKCE verifier where needed) and the provider URL.
	BeginLogin(ctx context.Context, provider domain.AuthProvider) (*domain.OAuthStart, error)
	// CompleteLogin exchanges the code and fetches a provider-neutral profile.
	CompleteLogin(ctx context.Context, provider domain.AuthProvider, code, verifier string) (*domain.OAuthProfile, error)
}
