package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/SscSPs/news_aggregator_app/internal/metrics"
	"github.com/google/uuid"
)

// MinSearchLength is the shortest search term accepted.
const MinSearchLength = 2

type articleService struct {
	BaseService
	articleRepo portsrepo.ArticleRepositoryFacade
	preferences portssvc.PreferenceSvcFacade
}

func NewArticleService(articleRepo portsrepo.ArticleRepositoryFacade, preferences portssvc.PreferenceSvcFacade) portssvc.ArticleSvcFacade {
	return &articleService{articleRepo: articleRepo, preferences: preferences}
}

func (s *articleService) ListArticles(ctx context.Context, filter domain.ArticleFilter, page domain.Page) (*domain.ArticlePage, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, apperrors.NewValidationFailedError("endDate must not be before startDate",
			apperrors.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	return s.run(ctx, "filter", BuildFilterQuery(filter, page))
}

func (s *articleService) SearchArticles(ctx context.Context, q string, page domain.Page) (*domain.ArticlePage, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < MinSearchLength {
		return nil, apperrors.NewValidationFailedError("Search query too short",
			apperrors.FieldError{Field: "q", Message: fmt.Sprintf("must be at least %d characters", MinSearchLength)})
	}
	return s.run(ctx, "search", BuildSearchQuery(q, page))
}

func (s *articleService) PersonalizedArticles(ctx context.Context, userID string, page domain.Page) (*domain.ArticlePage, error) {
	pref, err := s.preferences.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	query := BuildPersonalizedQuery(*pref, page)
	if query.MatchesEverything() {
		s.LogDebug(ctx, "No preferences set, returning unfiltered articles", slog.String("user_id", userID))
	}
	return s.run(ctx, "personalized", query)
}

func (s *articleService) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if _, err := uuid.Parse(articleID); err != nil {
		return nil, apperrors.NewNotFoundError("Article not found")
	}
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Article not found")
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return article, nil
}

// IngestArticles stores new articles, skipping URLs already known.
func (s *articleService) IngestArticles(ctx context.Context, articles []domain.Article) (int64, error) {
	now := s.Now()
	batch := make([]domain.Article, 0, len(articles))
	seen := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		a.URL = strings.TrimSpace(a.URL)
		if _, dup := seen[a.URL]; dup {
			continue
		}
		seen[a.URL] = struct{}{}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if a.PublishedAt.IsZero() {
			a.PublishedAt = now
		}
		a.CreatedAt = now
		a.UpdatedAt = now
		batch = append(batch, a)
	}

	inserted, err := s.articleRepo.BulkInsertArticles(ctx, batch)
	if err != nil {
		s.LogError(ctx, err, "Failed to ingest articles", slog.Int("count", len(batch)))
		return 0, fmt.Errorf("failed to ingest articles: %w", err)
	}
	s.LogInfo(ctx, "Ingested articles", slog.Int("received", len(articles)), slog.Int64("inserted", inserted))
	return inserted, nil
}

func (s *articleService) run(ctx context.Context, kind string, q domain.ArticleQuery) (*domain.ArticlePage, error) {
	start := time.Now()
	page, err := s.articleRepo.QueryArticles(ctx, q)
	metrics.ArticleQueryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	if page.Articles == nil {
		page.Articles = []domain.Article{}
	}
	return page, nil
}
