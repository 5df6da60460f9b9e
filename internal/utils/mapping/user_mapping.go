package mapping

import (
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/SscSPs/news_aggregator_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	role := d.Role
	if !role.Valid() {
		role = domain.RoleUser
	}
	return models.User{
		ID:             d.ID,
		Email:          d.Email,
		PasswordHash:   toNullString(d.PasswordHash),
		Name:           d.Name,
		GoogleID:       toNullString(d.GoogleID),
		FacebookID:     toNullString(d.FacebookID),
		TwitterID:      toNullString(d.TwitterID),
		ProfilePicture: toNullString(d.ProfilePicture),
		Role:           string(role),
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		DeletedAt: d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:             m.ID,
		Email:          m.Email,
		PasswordHash:   fromNullString(m.PasswordHash),
		Name:           m.Name,
		GoogleID:       fromNullString(m.GoogleID),
		FacebookID:     fromNullString(m.FacebookID),
		TwitterID:      fromNullString(m.TwitterID),
		ProfilePicture: fromNullString(m.ProfilePicture),
		Role:           domain.Role(m.Role),
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		DeletedAt: m.DeletedAt,
	}
}
