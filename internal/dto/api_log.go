package dto

import (
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAPILogRequest records a call to an upstream news API.
type CreateAPILogRequest struct {
	APISource      string `json:"apiSource" binding:"required,max=50"`
	Endpoint       string `json:"endpoint" binding:"required"`
	StatusCode     int    `json:"statusCode" binding:"required,min=100,max=599"`
	ResponseTimeMs int    `json:"responseTimeMs" binding:"min=0"`
}

type ListAPILogsParams struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
	Source    string `form:"source" binding:"omitempty,max=50"`
}

type APIStatsParams struct {
	Days int `form:"days,default=7" binding:"omitempty,min=1,max=365"`
}

type APILogResponse struct {
	ID             string    `json:"id"`
	APISource      string    `json:"apiSource"`
	Endpoint       string    `json:"endpoint"`
	StatusCode     int       `json:"statusCode"`
	ResponseTimeMs int       `json:"responseTimeMs"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToAPILogResponse(l domain.APILog) APILogResponse {
	return APILogResponse{
		ID:             l.ID,
		APISource:      l.APISource,
		Endpoint:       l.Endpoint,
		StatusCode:     l.StatusCode,
		ResponseTimeMs: l.ResponseTimeMs,
		CreatedAt:      l.CreatedAt,
	}
}

func ToAPILogResponses(logs []domain.APILog) []APILogResponse {
	out := make([]APILogResponse, len(logs))
	for i, l := range logs {
		out[i] = ToAPILogResponse(l)
	}
	return out
}

type APILogStatsResponse struct {
	APISource         string          `json:"apiSource"`
	RequestCount      int64           `json:"requestCount"`
	AvgResponseTimeMs decimal.Decimal `json:"avgResponseTimeMs" swaggertype:"string"`
	MaxResponseTimeMs int             `json:"maxResponseTimeMs"`
}

func ToAPILogStatsResponses(stats []domain.APILogStats) []APILogStatsResponse {
	out := make([]APILogStatsResponse, len(stats))
	for i, s := range stats {
		out[i] = APILogStatsResponse(s)
	}
	return out
}
