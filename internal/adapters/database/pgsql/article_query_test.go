package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderArticleQuery_MatchAll(t *testing.T) {
	r, err := renderArticleQuery(domain.ArticleQuery{Page: domain.NewPage(0, 0)})
	require.NoError(t, err)
	assert.Empty(t, r.where)
	assert.Empty(t, r.args)

	list, args, count := r.selectSQL(domain.NewPage(0, 0))
	assert.Contains(t, list, "ORDER BY published_at DESC, id DESC LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{20, 0}, args)
	assert.Equal(t, "SELECT COUNT(*) FROM articles ;", count)
}

func TestRenderArticleQuery_Conjunction(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	q := domain.ArticleQuery{
		Combinator: domain.MatchAll,
		Predicates: []domain.Predicate{
			{Op: domain.OpEquals, Fields: []domain.ArticleField{domain.FieldSourceName}, Value: "bbc-news"},
			{Op: domain.OpContainsFold, Fields: []domain.ArticleField{domain.FieldAuthor}, Value: "50%_off"},
			{Op: domain.OpOnOrAfter, Fields: []domain.ArticleField{domain.FieldPublishedAt}, Time: start},
		},
	}
	r, err := renderArticleQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "WHERE source_name = $1 AND author ILIKE $2 AND published_at >= $3", r.where)
	assert.Equal(t, []any{"bbc-news", `%50\%\_off%`, start}, r.args)

	list, args, _ := r.selectSQL(domain.Page{Limit: 5, Offset: 10})
	assert.Contains(t, list, "LIMIT $4 OFFSET $5")
	assert.Equal(t, 5, args[3])
	assert.Equal(t, 10, args[4])
}

func TestRenderArticleQuery_Disjunction(t *testing.T) {
	q := domain.ArticleQuery{
		Combinator: domain.MatchAny,
		Predicates: []domain.Predicate{
			{Op: domain.OpIn, Fields: []domain.ArticleField{domain.FieldCategory}, Values: []string{"tech", "science"}},
			{Op: domain.OpContainsFold, Fields: []domain.ArticleField{domain.FieldAuthor}, Value: "alice"},
			{Op: domain.OpContainsFold, Fields: []domain.ArticleField{domain.FieldAuthor}, Value: "bob"},
		},
	}
	r, err := renderArticleQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "WHERE category = ANY($1) OR author ILIKE $2 OR author ILIKE $3", r.where)
	assert.Equal(t, []string{"tech", "science"}, r.args[0])
}

func TestRenderArticleQuery_MultiFieldSearch(t *testing.T) {
	q := domain.ArticleQuery{Predicates: []domain.Predicate{{
		Op:     domain.OpContainsFold,
		Fields: []domain.ArticleField{domain.FieldTitle, domain.FieldDescription},
		Value:  "gpu",
	}}}
	r, err := renderArticleQuery(q)
	require.NoError(t, err)
	assert.Equal(t, "WHERE (title ILIKE $1 OR description ILIKE $1)", r.where)
	assert.Len(t, r.args, 1)
}

func TestRenderArticleQuery_UnknownField(t *testing.T) {
	_, err := renderArticleQuery(domain.ArticleQuery{Predicates: []domain.Predicate{{
		Op: domain.OpEquals, Fields: []domain.ArticleField{"1=1; DROP TABLE articles"}, Value: "x",
	}}})
	assert.Error(t, err)
}
