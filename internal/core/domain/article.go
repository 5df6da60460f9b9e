package domain

import "time"

// Article is a stored news item. URL is the de-duplication key.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Author      *string   `json:"author,omitempty"`
	SourceName  string    `json:"sourceName"`
	SourceID    *string   `json:"sourceId,omitempty"`
	Category    *string   `json:"category,omitempty"`
	URL         string    `json:"url"`
	URLToImage  *string   `json:"urlToImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Timestamps
}

// ArticleFilter narrows a listing. Every set field must match.
type ArticleFilter struct {
	Source    string
	Category  string
	Author    string
	StartDate *time.Time
	EndDate   *time.Time
}

// ArticleField names a filterable article column.
type ArticleField string

const (
	FieldSourceName  ArticleField = "source_name"
	FieldCategory    ArticleField = "category"
	FieldAuthor      ArticleField = "author"
	FieldTitle       ArticleField = "title"
	FieldDescription ArticleField = "description"
	FieldPublishedAt ArticleField = "published_at"
)

// PredicateOp is the comparison a Predicate performs.
type PredicateOp int

const (
	OpEquals PredicateOp = iota
	OpIn
	// OpContainsFold matches a case-insensitive substring in any of Fields.
	OpContainsFold
	OpOnOrAfter
	OpOnOrBefore
)

// Predicate is a single condition over article columns.
type Predicate struct {
	Op     PredicateOp
	Fields []ArticleField
	Value  string
	Values []string
	Time   time.Time
}

// Combinator joins the predicates of an ArticleQuery.
type Combinator int

const (
	MatchAll Combinator = iota
	MatchAny
)

// ArticleQuery is a storage-neutral description of an article listing.
// A query without predicates matches every article. Results are always
// ordered newest first with id as the tie-break.
type ArticleQuery struct {
	Combinator Combinator
	Predicates []Predicate
	Page       Page
}

func (q ArticleQuery) MatchesEverything() bool {
	return len(q.Predicates) == 0
}

// ArticlePage is one window of a listing plus the unpaged total.
type ArticlePage struct {
	Articles []Article `json:"articles"`
	Total    int64     `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
