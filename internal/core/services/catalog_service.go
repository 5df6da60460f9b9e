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
	"github.com/SscSPs/news_aggregator_app/internal/dto"
	"github.com/google/uuid"
)

type catalogService struct {
	BaseService
	sourceRepo   portsrepo.NewsSourceRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCatalogService(sourceRepo portsrepo.NewsSourceRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{sourceRepo: sourceRepo, categoryRepo: categoryRepo}
}

func (s *catalogService) ListActiveSources(ctx context.Context) ([]domain.NewsSource, error) {
	sources, err := s.sourceRepo.ListActiveSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return nonNil(sources), nil
}

func (s *catalogService) ListSourcesByAPISource(ctx context.Context, apiSource string) ([]domain.NewsSource, error) {
	sources, err := s.sourceRepo.ListSourcesByAPISource(ctx, strings.TrimSpace(apiSource))
	if err != nil {
		return nil, fmt.Errorf("failed to list sources for %s: %w", apiSource, err)
	}
	return nonNil(sources), nil
}

func (s *catalogService) GetSourceByName(ctx context.Context, name string) (*domain.NewsSource, error) {
	source, err := s.sourceRepo.FindSourceByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("News source not found")
		}
		return nil, err
	}
	return source, nil
}

func (s *catalogService) CreateSource(ctx context.Context, req dto.CreateNewsSourceRequest) (*domain.NewsSource, error) {
	source := s.newSource(req)
	if err := s.sourceRepo.SaveSource(ctx, source); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("News source already exists", "name")
		}
		s.LogError(ctx, err, "Failed to create news source", slog.String("name", source.Name))
		return nil, err
	}
	return &source, nil
}

// InitializeSources bulk-registers sources, skipping names already known.
func (s *catalogService) InitializeSources(ctx context.Context, reqs []dto.CreateNewsSourceRequest) (int64, error) {
	sources := make([]domain.NewsSource, 0, len(reqs))
	for _, r := range reqs {
		sources = append(sources, s.newSource(r))
	}
	inserted, err := s.sourceRepo.BulkInsertSources(ctx, sources)
	if err != nil {
		return 0, fmt.Errorf("failed to initialize sources: %w", err)
	}
	s.LogInfo(ctx, "Initialized news sources", slog.Int64("inserted", inserted))
	return inserted, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	return cats, nil
}

func (s *catalogService) GetCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	cat, err := s.categoryRepo.FindCategoryByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Category not found")
		}
		return nil, err
	}
	return cat, nil
}

// ValidateCategories preserves the order of names in both result lists.
func (s *catalogService) ValidateCategories(ctx context.Context, names []string) ([]string, []string, error) {
	names = domain.NormalizeSet(names)
	known, err := s.categoryRepo.FindCategoriesByNames(ctx, names)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to validate categories: %w", err)
	}
	set := make(map[string]struct{}, len(known))
	for _, c := range known {
		set[c.Name] = struct{}{}
	}
	valid, invalid := []string{}, []string{}
	for _, n := range names {
		if _, ok := set[n]; ok {
			valid = append(valid, n)
		} else {
			invalid = append(invalid, n)
		}
	}
	return valid, invalid, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	cat := domain.Category{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		DisplayName: strings.TrimSpace(req.DisplayName),
		CreatedAt:   s.Now(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, cat); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Category already exists", "name")
		}
		return nil, err
	}
	return &cat, nil
}

func (s *catalogService) newSource(req dto.CreateNewsSourceRequest) domain.NewsSource {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return domain.NewsSource{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		DisplayName: strings.TrimSpace(req.DisplayName),
		WebsiteURL:  req.WebsiteURL,
		APISource:   strings.TrimSpace(req.APISource),
		IsActive:    active,
		CreatedAt:   s.Now(),
	}
}

func nonNil(sources []domain.NewsSource) []domain.NewsSource {
	if sources == nil {
		return []domain.NewsSource{}
	}
	return sources
}
