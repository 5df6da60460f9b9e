package dto

import "github.com/SscSPs/news_aggregator_app/internal/core/domain"

// UpdateProfileRequest defines the data allowed for updating a profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProfileRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email          *string `json:"email" binding:"omitempty,email,max=255"`
	ProfilePicture *string `json:"profile_picture" binding:"omitempty,url"`
}

func (r UpdateProfileRequest) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		Name:           r.Name,
		Email:          r.Email,
		ProfilePicture: r.ProfilePicture,
	}
}
