package services

import (
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// BuildFilterQuery turns explicit listing filters into a conjunctive query.
// Source and category match exactly, author is a case-insensitive substring
// and both date bounds are inclusive. No filters match everything.
func BuildFilterQuery(f domain.ArticleFilter, page domain.Page) domain.ArticleQuery {
	q := domain.ArticleQuery{Combinator: domain.MatchAll, Page: domain.NewPage(page.Limit, page.Offset)}

	if v := strings.TrimSpace(f.Source); v != "" {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpEquals, Fields: []domain.ArticleField{domain.FieldSourceName}, Value: v})
	}
	if v := strings.TrimSpace(f.Category); v != "" {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpEquals, Fields: []domain.ArticleField{domain.FieldCategory}, Value: v})
	}
	if v := strings.TrimSpace(f.Author); v != "" {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpContainsFold, Fields: []domain.ArticleField{domain.FieldAuthor}, Value: v})
	}
	if f.StartDate != nil {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpOnOrAfter, Fields: []domain.ArticleField{domain.FieldPublishedAt}, Time: *f.StartDate})
	}
	if f.EndDate != nil {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpOnOrBefore, Fields: []domain.ArticleField{domain.FieldPublishedAt}, Time: *f.EndDate})
	}
	return q
}

// BuildPersonalizedQuery ORs together the user's preferred sources, categories
// and one substring clause per preferred author. Empty preferences match
// everything rather than nothing.
func BuildPersonalizedQuery(pref domain.Preference, page domain.Page) domain.ArticleQuery {
	pref.Normalize()
	q := domain.ArticleQuery{Combinator: domain.MatchAny, Page: domain.NewPage(page.Limit, page.Offset)}

	if len(pref.PreferredSources) > 0 {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpIn, Fields: []domain.ArticleField{domain.FieldSourceName}, Values: pref.PreferredSources})
	}
	if len(pref.PreferredCategories) > 0 {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpIn, Fields: []domain.ArticleField{domain.FieldCategory}, Values: pref.PreferredCategories})
	}
	for _, author := range pref.PreferredAuthors {
		q.Predicates = append(q.Predicates, domain.Predicate{Op: domain.OpContainsFold, Fields: []domain.ArticleField{domain.FieldAuthor}, Value: author})
	}
	if len(q.Predicates) == 0 {
		q.Combinator = domain.MatchAll
	}
	return q
}

// BuildSearchQuery matches term case-insensitively in title or description.
func BuildSearchQuery(term string, page domain.Page) domain.ArticleQuery {
	q := domain.ArticleQuery{Combinator: domain.MatchAll, Page: domain.NewPage(page.Limit, page.Offset)}
	if term = strings.TrimSpace(term); term != "" {
		q.Predicates = []domain.Predicate{{
			Op:     domain.OpContainsFold,
			Fields: []domain.ArticleField{domain.FieldTitle, domain.FieldDescription},
			Value:  term,
		}}
	}
	return q
}
