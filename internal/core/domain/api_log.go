package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// APILog records one call made to an upstream news API.
type APILog struct {
	ID             string    `json:"id"`
	APISource      string    `json:"apiSource"`
	Endpoint       string    `json:"endpoint"`
	StatusCode     int       `json:"statusCode"`
	ResponseTimeMs int       `json:"responseTimeMs"`
	CreatedAt      time.Time `json:"createdAt"`
}

// APILogStats aggregates calls per upstream source.
type APILogStats struct {
	APISource         string          `json:"apiSource"`
	RequestCount      int64           `json:"requestCount"`
	AvgResponseTimeMs decimal.Decimal `json:"avgResponseTimeMs"`
	MaxResponseTimeMs int             `json:"maxResponseTimeMs"`
}

type APILogRange struct {
	Start     time.Time
	End       time.Time
	APISource string
}
