package models

import (
	"database/sql"
	"time"
)

// Article is the row shape of the articles table.
type Article struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Content     sql.NullString `db:"content"`
	Author      sql.NullString `db:"author"`
	SourceName  string         `db:"source_name"`
	SourceID    sql.NullString `db:"source_id"`
	Category    sql.NullString `db:"category"`
	URL         string         `db:"url"`
	URLToImage  sql.NullString `db:"url_to_image"`
	PublishedAt time.Time      `db:"published_at"`
	Timestamps
}

// SavedArticle is the row shape of the saved_articles table.
type SavedArticle struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ArticleID string    `db:"article_id"`
	SavedAt   time.Time `db:"saved_at"`
}
