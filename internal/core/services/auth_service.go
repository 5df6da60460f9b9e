package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/metrics"
	"github.com/SscSPs/news_aggregator_app/internal/platform/mail"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
)

// authService resolves credentials and drives the password lifecycle.
type authService struct {
	BaseService
	users  portsrepo.UserRepositoryFacade
	creds  *CredentialStore
	tokens portssvc.TokenSvcFacade
	mailer mail.Mailer
}

// NewAuthService creates a new instance of authService.
func NewAuthService(users portsrepo.UserRepositoryFacade, creds *CredentialStore, tokens portssvc.TokenSvcFacade, mailer mail.Mailer) portssvc.AuthSvcFacade {
	return &authService{users: users, creds: creds, tokens: tokens, mailer: mailer}
}

// Authenticate dispatches on the closed set of credential variants.
func (s *authService) Authenticate(ctx context.Context, cred domain.Credential) (*domain.AuthResult, error) {
	switch c := cred.(type) {
	case domain.LocalCredential:
		return s.loginLocal(ctx, c)
	case domain.OAuthCredential:
		return s.loginOAuth(ctx, c.Profile)
	case domain.BearerCredential:
		return s.resolveBearer(ctx, c.Token)
	default:
		return nil, fmt.Errorf("unsupported credential type %T", cred)
	}
}

func (s *authService) loginLocal(ctx context.Context, cred domain.LocalCredential) (*domain.AuthResult, error) {
	user, err := s.users.FindUserByEmail(ctx, domain.NormalizeEmail(cred.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordAuthAttempt("local", metrics.OutcomeFailure)
			return nil, apperrors.ErrInvalidCredentials
		}
		metrics.RecordAuthAttempt("local", metrics.OutcomeError)
		return nil, err
	}

	ok, err := s.creds.VerifyPassword(ctx, user, cred.Password)
	if err != nil {
		if !errors.Is(err, utils.ErrHashing) {
			metrics.RecordAuthAttempt("local", metrics.OutcomeError)
			return nil, err
		}
		s.LogError(ctx, err, "Stored password digest is unusable", slog.String("user_id", user.ID))
		ok = false
	}
	if !ok {
		metrics.RecordAuthAttempt("local", metrics.OutcomeFailure)
		return nil, apperrors.ErrInvalidCredentials
	}

	metrics.RecordAuthAttempt("local", metrics.OutcomeSuccess)
	return s.issue(user)
}

// Register creates a local account. Uniqueness is left to the database.
func (s *authService) Register(ctx context.Context, email, password, name string) (*domain.AuthResult, error) {
	email = domain.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user, err := s.creds.Create(ctx, domain.User{Email: email, Name: name, Role: domain.RoleUser}, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("User with this email already exists", "email")
		}
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.ID))
	return s.issue(user)
}

func (s *authService) loginOAuth(ctx context.Context, profile domain.OAuthProfile) (*domain.AuthResult, error) {
	method := string(profile.Provider)
	if !profile.Provider.Valid() || profile.ProviderID == "" {
		metrics.RecordAuthAttempt("oauth", metrics.OutcomeFailure)
		return nil, apperrors.NewBadRequestError("Incomplete OAuth profile")
	}

	email := domain.NormalizeEmail(profile.Email)
	if email == "" {
		if profile.Provider != domain.ProviderTwitter || profile.Username == "" {
			metrics.RecordAuthAttempt(method, metrics.OutcomeFailure)
			return nil, apperrors.NewBadRequestError("The provider did not share an email address")
		}
		email = domain.TwitterPlaceholderEmail(profile.Username)
	}

	user, err := s.users.FindUserByProvider(ctx, profile.Provider, profile.ProviderID)
	switch {
	case err == nil:
		metrics.RecordAuthAttempt(method, metrics.OutcomeSuccess)
		return s.issue(user)
	case !errors.Is(err, apperrors.ErrNotFound):
		metrics.RecordAuthAttempt(method, metrics.OutcomeError)
		return nil, err
	}

	user, err = s.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		user, err = s.linkProvider(ctx, user, profile)
	case errors.Is(err, apperrors.ErrNotFound):
		user, err = s.createOAuthUser(ctx, email, profile)
	}
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, apperrors.ErrDuplicate) {
			outcome = metrics.OutcomeFailure
		}
		metrics.RecordAuthAttempt(method, outcome)
		return nil, err
	}

	metrics.RecordAuthAttempt(method, metrics.OutcomeSuccess)
	return s.issue(user)
}

// linkProvider attaches the provider ID to an existing account found by email.
// An existing, different linkage is never overwritten.
func (s *authService) linkProvider(ctx context.Context, user *domain.User, profile domain.OAuthProfile) (*domain.User, error) {
	linked := user.ProviderID(profile.Provider)
	if linked == profile.ProviderID {
		return user, nil
	}
	if linked != "" || domain.IsPlaceholderEmail(user.Email) {
		s.LogWarn(ctx, "Refusing to relink provider account",
			slog.String("user_id", user.ID), slog.String("provider", string(profile.Provider)))
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("This email is already linked to a different %s account", profile.Provider),
			string(profile.Provider)+"_id")
	}

	updated := *user
	updated.SetProviderID(profile.Provider, profile.ProviderID)
	if updated.ProfilePicture == nil && profile.Picture != "" {
		pic := profile.Picture
		updated.ProfilePicture = &pic
	}
	saved, err := s.creds.Update(ctx, updated, nil)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Linked provider to existing user",
		slog.String("user_id", saved.ID), slog.String("provider", string(profile.Provider)))
	return saved, nil
}

func (s *authService) createOAuthUser(ctx context.Context, email string, profile domain.OAuthProfile) (*domain.User, error) {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = profile.Username
	}
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	user := domain.User{Email: email, Name: name, Role: domain.RoleUser}
	user.SetProviderID(profile.Provider, profile.ProviderID)
	if profile.Picture != "" {
		pic := profile.Picture
		user.ProfilePicture = &pic
	}
	created, err := s.creds.Create(ctx, user, "")
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Created user from OAuth profile",
		slog.String("user_id", created.ID), slog.String("provider", string(profile.Provider)))
	return created, nil
}

func (s *authService) resolveBearer(ctx context.Context, token string) (*domain.AuthResult, error) {
	claims, err := s.tokens.VerifyAccess(token)
	if err != nil {
		metrics.RecordAuthAttempt("bearer", metrics.OutcomeFailure)
		return nil, err
	}
	user, err := s.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordAuthAttempt("bearer", metrics.OutcomeFailure)
			return nil, fmt.Errorf("%w: user no longer exists", apperrors.ErrInvalidToken)
		}
		metrics.RecordAuthAttempt("bearer", metrics.OutcomeError)
		return nil, err
	}
	return &domain.AuthResult{User: user}, nil
}

// ForgotPassword returns "" without error for unknown emails.
func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	token, err := s.tokens.IssueReset(user)
	if err != nil {
		return "", err
	}
	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.LogError(ctx, err, "Failed to send password reset email", slog.String("user_id", user.ID))
	}
	return token, nil
}

// ResetPassword stores the new password before any token is issued.
func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) (*domain.AuthResult, error) {
	claims, err := s.tokens.VerifyReset(resetToken)
	if err != nil {
		metrics.RecordAuthAttempt("reset", metrics.OutcomeFailure)
		s.LogWarn(ctx, "Rejected reset token", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(400, "Invalid or expired reset token", err)
	}

	user, err := s.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, err
	}
	// A reset token is spent once the password it was issued against changes.
	if (claims.Email != "" && claims.Email != user.Email) || claims.PasswordState != user.PasswordFingerprint() {
		metrics.RecordAuthAttempt("reset", metrics.OutcomeFailure)
		s.LogWarn(ctx, "Rejected stale reset token", slog.String("user_id", user.ID))
		return nil, apperrors.NewAppError(400, "Invalid or expired reset token", apperrors.ErrInvalidToken)
	}

	// Always store a fresh digest so the fingerprint moves even when the
	// new password equals the old one.
	fresh := *user
	fresh.PasswordHash = nil
	saved, err := s.creds.Update(ctx, fresh, &newPassword)
	if err != nil {
		return nil, err
	}
	metrics.RecordAuthAttempt("reset", metrics.OutcomeSuccess)
	s.LogInfo(ctx, "Password reset", slog.String("user_id", saved.ID))
	return s.issue(saved)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		metrics.RecordAuthAttempt("refresh", metrics.OutcomeFailure)
		return nil, err
	}
	user, err := s.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordAuthAttempt("refresh", metrics.OutcomeFailure)
			return nil, fmt.Errorf("%w: user no longer exists", apperrors.ErrInvalidToken)
		}
		return nil, err
	}
	metrics.RecordAuthAttempt("refresh", metrics.OutcomeSuccess)
	return s.issue(user)
}

func (s *authService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasPassword() {
		return apperrors.NewBadRequestError("This account has no password. Use forgot-password to set one")
	}
	ok, err := s.creds.VerifyPassword(ctx, user, currentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}
	if _, err := s.creds.Update(ctx, *user, &newPassword); err != nil {
		return err
	}
	s.LogInfo(ctx, "Password changed", slog.String("user_id", user.ID))
	return nil
}

func (s *authService) issue(user *domain.User) (*domain.AuthResult, error) {
	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{User: user, TokenPair: pair}, nil
}
