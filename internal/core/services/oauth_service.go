package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/platform/config"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

const (
	facebookProfileURL = "https://graph.facebook.com/me?fields=id,name,email,picture.type(large)"
	twitterProfileURL  = "https://api.twitter.com/2/users/me?user.fields=profile_image_url"
)

var twitterEndpoint = oauth2.Endpoint{
	AuthURL:   "https://twitter.com/i/oauth2/authorize",
	TokenURL:  "https://api.twitter.com/2/oauth2/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

// IDTokenValidator checks a Google ID token for the given audience.
type IDTokenValidator func(ctx context.Context, rawToken, audience string) (*idtoken.Payload, error)

type profileFetcher func(ctx context.Context, p *oauthProvider, tok *oauth2.Token) (*domain.OAuthProfile, error)

type oauthProvider struct {
	name       domain.AuthProvider
	config     *oauth2.Config
	profileURL string
	pkce       bool
	fetch      profileFetcher
}

// oauthService runs the authorization-code flow for each configured provider.
type oauthService struct {
	BaseService
	providers       map[domain.AuthProvider]*oauthProvider
	validateIDToken IDTokenValidator
}

// OAuthOption customises provider endpoints, mainly for tests.
type OAuthOption func(*oauthService)

// WithProviderEndpoint points a provider at different authorize, token and profile URLs.
func WithProviderEndpoint(p domain.AuthProvider, authURL, tokenURL, profileURL string) OAuthOption {
	return func(s *oauthService) {
		if prov, ok := s.providers[p]; ok {
			prov.config.Endpoint.AuthURL = authURL
			prov.config.Endpoint.TokenURL = tokenURL
			if profileURL != "" {
				prov.profileURL = profileURL
			}
		}
	}
}

func WithIDTokenValidator(v IDTokenValidator) OAuthOption {
	return func(s *oauthService) { s.validateIDToken = v }
}

// NewOAuthService registers every provider whose client ID and secret are set.
func NewOAuthService(cfg *config.Config, opts ...OAuthOption) portssvc.OAuthSvcFacade {
	s := &oauthService{
		providers:       map[domain.AuthProvider]*oauthProvider{},
		validateIDToken: idtoken.Validate,
	}

	if cfg.Google.Enabled() {
		s.providers[domain.ProviderGoogle] = &oauthProvider{
			name:   domain.ProviderGoogle,
			config: newOAuthConfig(cfg.Google, google.Endpoint, "openid", "email", "profile"),
			fetch:  s.fetchGoogleProfile,
		}
	}
	if cfg.Facebook.Enabled() {
		s.providers[domain.ProviderFacebook] = &oauthProvider{
			name:       domain.ProviderFacebook,
			config:     newOAuthConfig(cfg.Facebook, facebook.Endpoint, "email", "public_profile"),
			profileURL: facebookProfileURL,
			fetch:      fetchFacebookProfile,
		}
	}
	if cfg.Twitter.Enabled() {
		s.providers[domain.ProviderTwitter] = &oauthProvider{
			name:       domain.ProviderTwitter,
			config:     newOAuthConfig(cfg.Twitter, twitterEndpoint, "tweet.read", "users.read"),
			profileURL: twitterProfileURL,
			pkce:       true,
			fetch:      fetchTwitterProfile,
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newOAuthConfig(p config.OAuthProviderConfig, endpoint oauth2.Endpoint, scopes ...string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     p.ClientID,
		ClientSecret: p.ClientSecret,
		RedirectURL:  p.RedirectURL,
		Scopes:       scopes,
		Endpoint:     endpoint,
	}
}

func (s *oauthService) Enabled(p domain.AuthProvider) bool {
	_, ok := s.providers[p]
	return ok
}

func (s *oauthService) provider(p domain.AuthProvider) (*oauthProvider, error) {
	prov, ok := s.providers[p]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s login is not available", p))
	}
	return prov, nil
}

// BeginLogin generates a random state and, for PKCE providers, a verifier.
func (s *oauthService) BeginLogin(ctx context.Context, p domain.AuthProvider) (*domain.OAuthStart, error) {
	prov, err := s.provider(p)
	if err != nil {
		return nil, err
	}
	state, err := utils.NewOpaqueToken(24)
	if err != nil {
		return nil, fmt.Errorf("generate oauth state: %w", err)
	}

	start := &domain.OAuthStart{State: state}
	var opts []oauth2.AuthCodeOption
	if prov.pkce {
		start.Verifier = oauth2.GenerateVerifier()
		opts = append(opts, oauth2.S256ChallengeOption(start.Verifier))
	}
	start.URL = prov.config.AuthCodeURL(state, opts...)
	return start, nil
}

// CompleteLogin exchanges the authorization code and loads the provider profile.
func (s *oauthService) CompleteLogin(ctx context.Context, p domain.AuthProvider, code, verifier string) (*domain.OAuthProfile, error) {
	prov, err := s.provider(p)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(code) == "" {
		return nil, apperrors.NewBadRequestError("Authorization code is required.")
	}

	var opts []oauth2.AuthCodeOption
	if prov.pkce {
		if verifier == "" {
			return nil, apperrors.NewBadRequestError("OAuth session expired. Please try again.")
		}
		opts = append(opts, oauth2.VerifierOption(verifier))
	}

	tok, err := prov.config.Exchange(ctx, code, opts...)
	if err != nil {
		s.LogError(ctx, err, "Failed to exchange authorization code", "provider", string(p))
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && (rErr.ErrorCode == "invalid_grant" || (rErr.Response != nil && rErr.Response.StatusCode == http.StatusBadRequest)) {
			return nil, apperrors.NewBadRequestError("Invalid or expired authorization code.")
		}
		return nil, apperrors.NewGatewayTimeoutError(fmt.Sprintf("Failed to communicate with %s.", p))
	}

	profile, err := prov.fetch(ctx, prov, tok)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load provider profile", "provider", string(p))
		return nil, apperrors.NewGatewayTimeoutError(fmt.Sprintf("Failed to load %s profile.", p))
	}
	profile.Provider = p
	return profile, nil
}

func (s *oauthService) fetchGoogleProfile(ctx context.Context, prov *oauthProvider, tok *oauth2.Token) (*domain.OAuthProfile, error) {
	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, errors.New("id_token missing from google token response")
	}
	payload, err := s.validateIDToken(ctx, raw, prov.config.ClientID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid Google ID token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if payload.Subject == "" {
		return nil, errors.New("google ID token has no subject")
	}
	return &domain.OAuthProfile{ProviderID: payload.Subject, Email: email, Name: name, Picture: picture}, nil
}

type facebookMe struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func fetchFacebookProfile(ctx context.Context, prov *oauthProvider, tok *oauth2.Token) (*domain.OAuthProfile, error) {
	var me facebookMe
	if err := getJSON(ctx, prov, tok, &me); err != nil {
		return nil, err
	}
	if me.ID == "" {
		return nil, errors.New("facebook profile has no id")
	}
	return &domain.OAuthProfile{ProviderID: me.ID, Email: me.Email, Name: me.Name, Picture: me.Picture.Data.URL}, nil
}

type twitterMe struct {
	Data struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Username        string `json:"username"`
		ProfileImageURL string `json:"profile_image_url"`
	} `json:"data"`
}

// Twitter's v2 API does not return an email; the resolver substitutes a placeholder.
func fetchTwitterProfile(ctx context.Context, prov *oauthProvider, tok *oauth2.Token) (*domain.OAuthProfile, error) {
	var me twitterMe
	if err := getJSON(ctx, prov, tok, &me); err != nil {
		return nil, err
	}
	if me.Data.ID == "" {
		return nil, errors.New("twitter profile has no id")
	}
	return &domain.OAuthProfile{
		ProviderID: me.Data.ID,
		Name:       me.Data.Name,
		Username:   me.Data.Username,
		Picture:    me.Data.ProfileImageURL,
	}, nil
}

func getJSON(ctx context.Context, prov *oauthProvider, tok *oauth2.Token, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, prov.profileURL, nil)
	if err != nil {
		return err
	}
	resp, err := prov.config.Client(ctx, tok).Do(req)
	if err != nil {
		return fmt.Errorf("failed to get user info from %s: %w", prov.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s api returned non-200 status for profile: %s", prov.name, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode user info from %s: %w", prov.name, err)
	}
	return nil
}
