package dto

import (
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

type SavedArticleResponse struct {
	ID        string           `json:"id"`
	ArticleID string           `json:"articleId"`
	SavedAt   time.Time        `json:"savedAt"`
	Article   *ArticleResponse `json:"article,omitempty"`
}

func ToSavedArticleResponse(s domain.SavedArticle) SavedArticleResponse {
	resp := SavedArticleResponse{ID: s.ID, ArticleID: s.ArticleID, SavedAt: s.SavedAt}
	if s.Article != nil {
		a := ToArticleResponse(*s.Article)
		resp.Article = &a
	}
	return resp
}

type SavedArticlePageResponse struct {
	SavedArticles []SavedArticleResponse `json:"savedArticles"`
	Total         int64                  `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

func ToSavedArticlePageResponse(p *domain.SavedArticlePage) SavedArticlePageResponse {
	items := make([]SavedArticleResponse, len(p.Items))
	for i, s := range p.Items {
		items[i] = ToSavedArticleResponse(s)
	}
	return SavedArticlePageResponse{SavedArticles: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}

type SavedStatusResponse struct {
	IsSaved bool `json:"isSaved"`
}
