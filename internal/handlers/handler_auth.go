package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/SscSPs/news_aggregator_app/internal/middleware"
	"github.com/SscSPs/news_aggregator_app/internal/utils"
	"github.com/gin-gonic/gin"
)

const msgForgotPassword = "If an account with that email exists, a password reset link has been sent"

// authHandler handles local authentication and account management requests.
type authHandler struct {
	auth             portssvc.AuthSvcFacade
	exposeResetToken bool
	analytics        utils.EventSink
}

func newAuthHandler(auth portssvc.AuthSvcFacade, exposeResetToken bool, analytics utils.EventSink) *authHandler {
	return &authHandler{
		auth:             auth,
		exposeResetToken: exposeResetToken,
		analytics:        analytics,
	}
}

// registerAuthRoutes sets up the /auth routes. limited is applied to login and forgot-password.
func registerAuthRoutes(rg *gin.RouterGroup, h *authHandler, users *userHandler, requireAuth, limited gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limited, h.login)
		auth.POST("/forgot-password", limited, h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
		auth.POST("/refresh-token", h.refreshToken)

		auth.POST("/logout", requireAuth, h.logout)
		auth.GET("/me", requireAuth, users.me)
		auth.PUT("/profile", requireAuth, users.updateProfile)
		auth.PUT("/change-password", requireAuth, h.changePassword)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a local account and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromContext(c).Info("User registered", slog.String("user_id", res.User.ID))
	respondOK(c, http.StatusCreated, "User registered successfully", dto.ToAuthResponse(res))
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password and returns a token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.Authenticate(c.Request.Context(), domain.LocalCredential{Email: req.Email, Password: req.Password})
	if err != nil {
		respondError(c, err)
		return
	}
	if h.analytics != nil {
		h.analytics.Enqueue(res.User.ID, "user_logged_in", map[string]any{"method": "local"})
	}
	respondOK(c, http.StatusOK, "Login successful", dto.ToAuthResponse(res))
}

// logout godoc
// @Summary Logout
// @Description Tokens are stateless; the client discards them.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	middleware.PosthogEvent(c, h.analytics, "user_logged_out", nil)
	respondOK(c, http.StatusOK, "Logged out successfully", nil)
}

// changePassword godoc
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Current password is incorrect"
// @Security BearerAuth
// @Router /auth/change-password [put]
func (h *authHandler) changePassword(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.auth.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Password changed successfully", nil)
}

// forgotPassword godoc
// @Summary Request a password reset
// @Description Always answers 200 so callers cannot tell whether the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Account email"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	var data any
	if h.exposeResetToken && token != "" {
		data = dto.ForgotPasswordResponse{ResetToken: token}
	}
	respondOK(c, http.StatusOK, msgForgotPassword, data)
}

// resetPassword godoc
// @Summary Reset password
// @Description Sets a new password using a reset token and returns a fresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.SuccessResponse{data=dto.TokenPairResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired reset token"
// @Router /auth/reset-password [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Password reset successfully", dto.ToTokenPairResponse(res.TokenPair))
}

// refreshToken godoc
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.SuccessResponse{data=dto.TokenPairResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Token refreshed successfully", dto.ToTokenPairResponse(res.TokenPair))
}
