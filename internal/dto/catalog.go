package dto

import (
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// CreateNewsSourceRequest defines the data needed to register a news source.
type CreateNewsSourceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	DisplayName string  `json:"display_name" binding:"required,max=255"`
	WebsiteURL  *string `json:"website_url" binding:"omitempty,url"`
	APISource   string  `json:"api_source" binding:"required,max=50"`
	IsActive    *bool   `json:"is_active"`
}

type ListSourcesParams struct {
	APISource string `form:"apiSource" binding:"omitempty,max=50"`
}

type NewsSourceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	WebsiteURL  *string   `json:"website_url,omitempty"`
	APISource   string    `json:"api_source"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToNewsSourceResponse(s domain.NewsSource) NewsSourceResponse {
	return NewsSourceResponse{
		ID:          s.ID,
		Name:        s.Name,
		DisplayName: s.DisplayName,
		WebsiteURL:  s.WebsiteURL,
		APISource:   s.APISource,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}

func ToNewsSourceResponses(ss []domain.NewsSource) []NewsSourceResponse {
	out := make([]NewsSourceResponse, len(ss))
	for i, s := range ss {
		out[i] = ToNewsSourceResponse(s)
	}
	return out
}

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	DisplayName string `json:"display_name" binding:"required,max=255"`
}

// ValidateCategoriesRequest asks which of the given names are known categories.
type ValidateCategoriesRequest struct {
	Names []string `json:"names" binding:"required,min=1,max=100,dive,required,max=100"`
}

type ValidateCategoriesResponse struct {
	Valid   []string `json:"valid"`
	Invalid []string `json:"invalid"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, DisplayName: c.DisplayName, CreatedAt: c.CreatedAt}
}

func ToCategoryResponses(cs []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCategoryResponse(c)
	}
	return out
}
