package models

import (
	"database/sql"
	"time"
)

// NewsSource is the row shape of the news_sources table.
type NewsSource struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	DisplayName string         `db:"display_name"`
	WebsiteURL  sql.NullString `db:"website_url"`
	APISource   string         `db:"api_source"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   time.Time      `db:"created_at"`
}
