package dto

import (
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Role           string    `json:"role"`
	HasPassword    bool      `json:"hasPassword"`
	Providers      []string  `json:"providers"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToUserResponse never exposes the password hash or raw provider IDs.
func ToUserResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	providers := []string{}
	for _, p := range []domain.AuthProvider{domain.ProviderGoogle, domain.ProviderFacebook, domain.ProviderTwitter} {
		if user.ProviderID(p) != "" {
			providers = append(providers, string(p))
		}
	}
	return UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		ProfilePicture: user.ProfilePicture,
		Role:           string(user.Role),
		HasPassword:    user.HasPassword(),
		Providers:      providers,
		CreatedAt:      user.CreatedAt,
	}
}
