package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/platform/config"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
)

// Token failure kinds. Every one of them wraps apperrors.ErrInvalidToken.
var (
	ErrTokenExpired   = utils.ErrTokenExpired
	ErrTokenMalformed = utils.ErrTokenMalformed
	ErrTokenSignature = utils.ErrTokenSignature
	ErrTokenType      = utils.ErrTokenType
)

// TokenSettings are the secrets and lifetimes the token service signs with.
type TokenSettings struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	ResetExpiry   time.Duration
}

// TokenSettingsFromConfig extracts token settings from the application config.
func TokenSettingsFromConfig(cfg *config.Config) TokenSettings {
	return TokenSettings{
		AccessSecret:  cfg.JWTSecret,
		RefreshSecret: cfg.RefreshTokenSecret,
		Issuer:        cfg.JWTIssuer,
		AccessExpiry:  cfg.JWTExpiryDuration,
		RefreshExpiry: cfg.RefreshTokenExpiryDuration,
		ResetExpiry:   cfg.ResetTokenExpiryDuration,
	}
}

// tokenService implements the TokenSvcFacade for handling access, refresh and reset tokens.
// Refresh tokens use their own secret; reset tokens share the access secret but carry a type tag.
type tokenService struct {
	settings TokenSettings
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(settings TokenSettings) portssvc.TokenSvcFacade {
	if settings.AccessExpiry <= 0 {
		settings.AccessExpiry = 7 * 24 * time.Hour
	}
	if settings.RefreshExpiry <= 0 {
		settings.RefreshExpiry = 30 * 24 * time.Hour
	}
	if settings.ResetExpiry <= 0 {
		settings.ResetExpiry = time.Hour
	}
	return &tokenService{settings: settings}
}

func (s *tokenService) IssueAccess(user *domain.User) (string, error) {
	return s.issue(utils.AppClaims{UserID: user.ID, Email: user.Email, Name: user.Name}, s.settings.AccessSecret, s.settings.AccessExpiry)
}

func (s *tokenService) IssueRefresh(user *domain.User) (string, error) {
	return s.issue(utils.AppClaims{UserID: user.ID, Type: string(domain.TokenTypeRefresh)}, s.settings.RefreshSecret, s.settings.RefreshExpiry)
}

func (s *tokenService) IssueReset(user *domain.User) (string, error) {
	claims := utils.AppClaims{
		UserID:        user.ID,
		Email:         user.Email,
		Type:          string(domain.TokenTypeReset),
		PasswordState: user.PasswordFingerprint(),
	}
	return s.issue(claims, s.settings.AccessSecret, s.settings.ResetExpiry)
}

func (s *tokenService) IssuePair(user *domain.User) (domain.TokenPair, error) {
	access, err := s.IssueAccess(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.IssueRefresh(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *tokenService) VerifyAccess(token string) (*domain.TokenClaims, error) {
	return s.verify(token, s.settings.AccessSecret, domain.TokenTypeAccess)
}

func (s *tokenService) VerifyRefresh(token string) (*domain.TokenClaims, error) {
	return s.verify(token, s.settings.RefreshSecret, domain.TokenTypeRefresh)
}

func (s *tokenService) VerifyReset(token string) (*domain.TokenClaims, error) {
	return s.verify(token, s.settings.AccessSecret, domain.TokenTypeReset)
}

func (s *tokenService) issue(claims utils.AppClaims, secret string, expiry time.Duration) (string, error) {
	token, err := utils.GenerateJWT(claims, secret, expiry, s.settings.Issuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign %q token: %w", claims.Type, err)
	}
	return token, nil
}

func (s *tokenService) verify(token, secret string, want domain.TokenType) (*domain.TokenClaims, error) {
	claims, err := utils.ParseAndValidateJWT(token, secret, s.settings.Issuer)
	if err != nil {
		return nil, err
	}
	if domain.TokenType(claims.Type) != want {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrTokenType, claims.Type, want)
	}
	return &domain.TokenClaims{
		UserID:        claims.UserID,
		Email:         claims.Email,
		Name:          claims.Name,
		Type:          domain.TokenType(claims.Type),
		PasswordState: claims.PasswordState,
	}, nil
}
