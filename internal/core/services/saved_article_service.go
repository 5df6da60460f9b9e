package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_aggregator_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_aggregator_app/internal/core/ports/services"
	"github.com/google/uuid"
)

type savedArticleService struct {
	BaseService
	savedRepo   portsrepo.SavedArticleRepositoryFacade
	articleRepo portsrepo.ArticleRepositoryFacade
}

func NewSavedArticleService(savedRepo portsrepo.SavedArticleRepositoryFacade, articleRepo portsrepo.ArticleRepositoryFacade) portssvc.SavedArticleSvcFacade {
	return &savedArticleService{savedRepo: savedRepo, articleRepo: articleRepo}
}

// SaveArticle relies on the (user, article) unique constraint; a repeat save
// returns the existing bookmark with created=false.
func (s *savedArticleService) SaveArticle(ctx context.Context, userID, articleID string) (*domain.SavedArticle, bool, error) {
	article, err := s.findArticle(ctx, articleID)
	if err != nil {
		return nil, false, err
	}

	saved, created, err := s.savedRepo.Save(ctx, domain.SavedArticle{
		ID:        uuid.NewString(),
		UserID:    userID,
		ArticleID: articleID,
		SavedAt:   s.Now(),
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, apperrors.NewNotFoundError("Article not found")
		}
		return nil, false, fmt.Errorf("failed to save article: %w", err)
	}
	if saved.Article == nil {
		saved.Article = article
	}
	return saved, created, nil
}

func (s *savedArticleService) UnsaveArticle(ctx context.Context, userID, articleID string) error {
	if _, err := uuid.Parse(articleID); err != nil {
		return apperrors.NewNotFoundError("Saved article not found")
	}
	if err := s.savedRepo.Delete(ctx, userID, articleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Saved article not found")
		}
		return fmt.Errorf("failed to remove saved article: %w", err)
	}
	return nil
}

func (s *savedArticleService) ListSavedArticles(ctx context.Context, userID string, page domain.Page) (*domain.SavedArticlePage, error) {
	result, err := s.savedRepo.ListForUser(ctx, userID, domain.NewPage(page.Limit, page.Offset))
	if err != nil {
		return nil, fmt.Errorf("failed to list saved articles: %w", err)
	}
	if result.Items == nil {
		result.Items = []domain.SavedArticle{}
	}
	return result, nil
}

func (s *savedArticleService) IsArticleSaved(ctx context.Context, userID, articleID string) (bool, error) {
	if _, err := uuid.Parse(articleID); err != nil {
		return false, nil
	}
	return s.savedRepo.Exists(ctx, userID, articleID)
}

func (s *savedArticleService) findArticle(ctx context.Context, articleID string) (*domain.Article, error) {
	if _, err := uuid.Parse(articleID); err != nil {
		return nil, apperrors.NewNotFoundError("Article not found")
	}
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Article not found")
		}
		return nil, err
	}
	return article, nil
}
