package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	oauthCookieMaxAge = 10 * 60
	stateCookiePrefix = "oauth_state_"
	verifierPrefix    = "oauth_verifier_"
)

// Error codes passed to the frontend callback page.
const (
	oauthErrDenied   = "access_denied"
	oauthErrState    = "invalid_state"
	oauthErrExchange = "oauth_failed"
	oauthErrConflict = "account_conflict"
	oauthErrAuth     = "authentication_failed"
)

// oauthHandler runs the browser side of the provider handshakes.
type oauthHandler struct {
	oauth           portssvc.OAuthSvcFacade
	auth            portssvc.AuthenticatorSvc
	frontendBaseURL string
	secureCookies   bool
	analytics       utils.EventSink
}

func newOAuthHandler(oauth portssvc.OAuthSvcFacade, auth portssvc.AuthenticatorSvc, frontendBaseURL string, secureCookies bool, analytics utils.EventSink) *oauthHandler {
	return &oauthHandler{
		oauth:           oauth,
		auth:            auth,
		frontendBaseURL: frontendBaseURL,
		secureCookies:   secureCookies,
		analytics:       analytics,
	}
}

// registerOAuthRoutes adds /auth/{provider} and /auth/{provider}/callback for every known provider.
// Disabled providers still get routes so callers receive a 404 envelope instead of a bare 404.
func registerOAuthRoutes(rg *gin.RouterGroup, h *oauthHandler) {
	auth := rg.Group("/auth")
	for _, p := range []domain.AuthProvider{domain.ProviderGoogle, domain.ProviderFacebook, domain.ProviderTwitter} {
		auth.GET("/"+string(p), h.begin(p))
		auth.GET("/"+string(p)+"/callback", h.callback(p))
	}
}

// begin godoc
// @Summary Start an OAuth login
// @Description Redirects to the provider's consent page. provider is one of google, facebook, twitter.
// @Tags oauth
// @Param provider path string true "Provider" Enums(google, facebook, twitter)
// @Success 302
// @Failure 404 {object} dto.ErrorResponse "Provider not configured"
// @Router /auth/{provider} [get]
func (h *oauthHandler) begin(provider domain.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start, err := h.oauth.BeginLogin(c.Request.Context(), provider)
		if err != nil {
			respondError(c, err)
			return
		}
		h.setCookie(c, provider, stateCookiePrefix, utils.HashOpaqueToken(start.State), oauthCookieMaxAge)
		if start.Verifier != "" {
			h.setCookie(c, provider, verifierPrefix, start.Verifier, oauthCookieMaxAge)
		}
		c.Redirect(http.StatusFound, start.URL)
	}
}

// callback godoc
// @Summary OAuth callback
// @Description Completes the handshake and redirects to FRONTEND_BASE_URL/auth/callback with token and refreshToken, or with error on failure.
// @Tags oauth
// @Param provider path string true "Provider" Enums(google, facebook, twitter)
// @Param code query string true "Authorization code"
// @Param state query string true "Opaque state"
// @Success 302
// @Router /auth/{provider}/callback [get]
func (h *oauthHandler) callback(provider domain.AuthProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("provider", string(provider)))

		stateHash, _ := c.Cookie(stateCookiePrefix + string(provider))
		verifier, _ := c.Cookie(verifierPrefix + string(provider))
		h.setCookie(c, provider, stateCookiePrefix, "", -1)
		h.setCookie(c, provider, verifierPrefix, "", -1)

		if denied := c.Query("error"); denied != "" {
			logger.Info("Provider returned an error", slog.String("error", denied))
			h.redirectError(c, oauthErrDenied)
			return
		}
		state := c.Query("state")
		if state == "" || stateHash == "" || !utils.CompareOpaqueTokenHash(state, stateHash) {
			logger.Warn("OAuth state mismatch")
			h.redirectError(c, oauthErrState)
			return
		}

		profile, err := h.oauth.CompleteLogin(ctx, provider, c.Query("code"), verifier)
		if err != nil {
			logger.Error("OAuth handshake failed", slog.String("error", err.Error()))
			h.redirectError(c, oauthErrExchange)
			return
		}

		res, err := h.auth.Authenticate(ctx, domain.OAuthCredential{Profile: *profile})
		if err != nil {
			logger.Warn("OAuth login rejected", slog.String("error", err.Error()))
			if errors.Is(err, apperrors.ErrDuplicate) {
				h.redirectError(c, oauthErrConflict)
				return
			}
			h.redirectError(c, oauthErrAuth)
			return
		}

		if h.analytics != nil {
			h.analytics.Enqueue(res.User.ID, "user_logged_in", map[string]any{"method": string(provider)})
		}
		q := url.Values{}
		q.Set("token", res.AccessToken)
		q.Set("refreshToken", res.RefreshToken)
		c.Redirect(http.StatusFound, h.frontendBaseURL+"/auth/callback?"+q.Encode())
	}
}

func (h *oauthHandler) redirectError(c *gin.Context, code string) {
	q := url.Values{}
	q.Set("error", code)
	c.Redirect(http.StatusFound, h.frontendBaseURL+"/auth/callback?"+q.Encode())
}

func (h *oauthHandler) setCookie(c *gin.Context, provider domain.AuthProvider, prefix, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(prefix+string(provider), value, maxAge, "/api/auth/"+string(provider), "", h.secureCookies, true)
}
