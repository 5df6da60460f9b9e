package services_test

import (
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// matchArticle evaluates q against a single article in memory, mirroring the
// SQL the storage adapter renders for the same query.
func matchArticle(q domain.ArticleQuery, a domain.Article) bool {
	if q.MatchesEverything() {
		return true
	}
	for _, p := range q.Predicates {
		ok := matchPredicate(p, a)
		if q.Combinator == domain.MatchAny && ok {
			return true
		}
		if q.Combinator == domain.MatchAll && !ok {
			return false
		}
	}
	return q.Combinator == domain.MatchAll
}

func matchPredicate(p domain.Predicate, a domain.Article) bool {
	switch p.Op {
	case domain.OpOnOrAfter:
		return !a.PublishedAt.Before(p.Time)
	case domain.OpOnOrBefore:
		return !a.PublishedAt.After(p.Time)
	}
	for _, f := range p.Fields {
		v, ok := articleField(a, f)
		if !ok {
			continue
		}
		switch p.Op {
		case domain.OpEquals:
			if v == p.Value {
				return true
			}
		case domain.OpIn:
			for _, want := range p.Values {
				if v == want {
					return true
				}
			}
		case domain.OpContainsFold:
			if strings.Contains(strings.ToLower(v), strings.ToLower(p.Value)) {
				return true
			}
		}
	}
	return false
}

func articleField(a domain.Article, f domain.ArticleField) (string, bool) {
	deref := func(s *string) (string, bool) {
		if s == nil {
			return "", false
		}
		return *s, true
	}
	switch f {
	case domain.FieldSourceName:
		return a.SourceName, true
	case domain.FieldCategory:
		return deref(a.Category)
	case domain.FieldAuthor:
		return deref(a.Author)
	case domain.FieldTitle:
		return a.Title, true
	case domain.FieldDescription:
		return deref(a.Description)
	}
	return "", false
}
