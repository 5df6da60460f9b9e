package domain

import "time"

// NewsSource is a publisher known to the aggregator.
type NewsSource struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	WebsiteURL  *string   `json:"websiteUrl,omitempty"`
	APISource   string    `json:"apiSource"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Category groups articles by topic.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
