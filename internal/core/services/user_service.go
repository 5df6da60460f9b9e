package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	creds    *CredentialStore
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, creds *CredentialStore) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, creds: creds}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// UpdateProfile returns the stored user untouched when nothing changes.
func (s *userService) UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := *user
	changed := false
	if update.Name != nil {
		if name := strings.TrimSpace(*update.Name); name != updated.Name {
			updated.Name = name
			changed = true
		}
	}
	if update.Email != nil {
		if email := domain.NormalizeEmail(*update.Email); email != updated.Email {
			updated.Email = email
			changed = true
		}
	}
	if update.ProfilePicture != nil {
		pic := strings.TrimSpace(*update.ProfilePicture)
		if updated.ProfilePicture == nil || *updated.ProfilePicture != pic {
			updated.ProfilePicture = &pic
			changed = true
		}
	}
	if !changed {
		return user, nil
	}

	saved, err := s.creds.Update(ctx, updated, nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Email address already in use", "email")
		}
		return nil, err
	}
	return saved, nil
}
