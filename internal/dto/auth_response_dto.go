package dto

import "github.com/SscSPs/news_aggregator_app/internal/core/domain"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// TokenPairResponse is returned by refresh-token and reset-password.
type TokenPairResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// ForgotPasswordResponse only carries the token in development builds.
type ForgotPasswordResponse struct {
	ResetToken string `json:"resetToken,omitempty"`
}

func ToAuthResponse(res *domain.AuthResult) AuthResponse {
	return AuthResponse{
		User:         ToUserResponse(res.User),
		Token:        res.AccessToken,
		RefreshToken: res.RefreshToken,
	}
}

func ToTokenPairResponse(pair domain.TokenPair) TokenPairResponse {
	return TokenPairResponse{Token: pair.AccessToken, RefreshToken: pair.RefreshToken}
}
