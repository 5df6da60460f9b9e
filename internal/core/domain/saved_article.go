package domain

import "time"

// SavedArticle is a user's bookmark on an article.
type SavedArticle struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ArticleID string    `json:"articleId"`
	SavedAt   time.Time `json:"savedAt"`
	Article   *Article  `json:"article,omitempty"`
}

type SavedArticlePage struct {
	Items  []SavedArticle `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
