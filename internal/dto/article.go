package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/apperrors"
	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

const dateOnlyLayout = "2006-01-02"

// PageParams defines the shared limit/offset query parameters.
type PageParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

func (p PageParams) ToDomain() domain.Page {
	return domain.NewPage(p.Limit, p.Offset)
}

// ListArticlesParams defines query parameters for filtering articles.
type ListArticlesParams struct {
	Source    string `form:"source" binding:"omitempty,max=255"`
	Category  string `form:"category" binding:"omitempty,max=100"`
	Author    string `form:"author" binding:"omitempty,max=255"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	PageParams
}

// ToDomain parses the date bounds. A date-only endDate covers that whole day.
func (p ListArticlesParams) ToDomain() (domain.ArticleFilter, error) {
	filter := domain.ArticleFilter{
		Source:   strings.TrimSpace(p.Source),
		Category: strings.TrimSpace(p.Category),
		Author:   strings.TrimSpace(p.Author),
	}
	var err error
	if filter.StartDate, err = ParseDateParam("startDate", p.StartDate, false); err != nil {
		return filter, err
	}
	if filter.EndDate, err = ParseDateParam("endDate", p.EndDate, true); err != nil {
		return filter, err
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, apperrors.NewValidationFailedError("Validation errors",
			apperrors.FieldError{Field: "endDate", Message: "End date must not be before start date"})
	}
	return filter, nil
}

// ParseDateParam accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
// An empty value yields nil.
func ParseDateParam(field, value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("Validation errors",
			apperrors.FieldError{Field: field, Message: fmt.Sprintf("%s must be a valid ISO-8601 date", field)})
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// SearchArticlesParams defines query parameters for full text search.
type SearchArticlesParams struct {
	Q string `form:"q" binding:"required,min=2,max=255"`
	PageParams
}

type ArticleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Author      *string   `json:"author,omitempty"`
	SourceName  string    `json:"source_name"`
	SourceID    *string   `json:"source_id,omitempty"`
	Category    *string   `json:"category,omitempty"`
	URL         string    `json:"url"`
	URLToImage  *string   `json:"url_to_image,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

func ToArticleResponse(a domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		Author:      a.Author,
		SourceName:  a.SourceName,
		SourceID:    a.SourceID,
		Category:    a.Category,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
	}
}

// ArticlePageResponse wraps one page of articles with its pagination metadata.
type ArticlePageResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

func ToArticlePageResponse(p *domain.ArticlePage) ArticlePageResponse {
	items := make([]ArticleResponse, len(p.Articles))
	for i, a := range p.Articles {
		items[i] = ToArticleResponse(a)
	}
	return ArticlePageResponse{Articles: items, Total: p.Total, Limit: p.Limit, Offset: p.Offset}
}

// ArticleDetailResponse carries isSaved only for authenticated callers.
type ArticleDetailResponse struct {
	Article ArticleResponse `json:"article"`
	IsSaved *bool           `json:"isSaved,omitempty"`
}

type CreateArticleRequest struct {
	Title       string    `json:"title" binding:"required,max=1000"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Author      *string   `json:"author" binding:"omitempty,max=255"`
	SourceName  string    `json:"source_name" binding:"required,max=255"`
	SourceID    *string   `json:"source_id" binding:"omitempty,max=255"`
	Category    *string   `json:"category" binding:"omitempty,max=100"`
	URL         string    `json:"url" binding:"required,url"`
	URLToImage  *string   `json:"url_to_image" binding:"omitempty,url"`
	PublishedAt time.Time `json:"published_at" binding:"required"`
}

func (r CreateArticleRequest) ToDomain() domain.Article {
	return domain.Article{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Content:     r.Content,
		Author:      r.Author,
		SourceName:  strings.TrimSpace(r.SourceName),
		SourceID:    r.SourceID,
		Category:    r.Category,
		URL:         strings.TrimSpace(r.URL),
		URLToImage:  r.URLToImage,
		PublishedAt: r.PublishedAt,
	}
}

// BulkArticlesRequest is the admin ingest payload.
type BulkArticlesRequest struct {
	Articles []CreateArticleRequest `json:"articles" binding:"required,min=1,max=500,dive"`
}

type BulkArticlesResponse struct {
	Received int   `json:"received"`
	Inserted int64 `json:"inserted"`
}
