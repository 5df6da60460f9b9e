package models

// Preference is the row shape of the user_preferences table.
type Preference struct {
	ID                  string   `db:"id"`
	UserID              string   `db:"user_id"`
	PreferredSources    []string `db:"preferred_sources"`
	PreferredCategories []string `db:"preferred_categories"`
	PreferredAuthors    []string `db:"preferred_authors"`
	Timestamps
}
