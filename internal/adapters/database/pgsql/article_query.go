package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
)

// articleColumns whitelists the columns a predicate may reference.
var articleColumns = map[domain.ArticleField]string{
	domain.FieldSourceName:  "source_name",
	domain.FieldCategory:    "category",
	domain.FieldAuthor:      "author",
	domain.FieldTitle:       "title",
	domain.FieldDescription: "description",
	domain.FieldPublishedAt: "published_at",
}

// renderedQuery is an ArticleQuery rendered to parameterised SQL fragments.
type renderedQuery struct {
	where string
	args  []any
}

type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

// renderArticleQuery builds the WHERE clause for q. Values are always bound,
// never interpolated.
func renderArticleQuery(q domain.ArticleQuery) (renderedQuery, error) {
	if q.MatchesEverything() {
		return renderedQuery{}, nil
	}

	var al argList
	clauses := make([]string, 0, len(q.Predicates))
	for _, p := range q.Predicates {
		clause, err := renderPredicate(p, &al)
		if err != nil {
			return renderedQuery{}, err
		}
		clauses = append(clauses, clause)
	}

	joiner := " AND "
	if q.Combinator == domain.MatchAny {
		joiner = " OR "
	}
	return renderedQuery{where: "WHERE " + strings.Join(clauses, joiner), args: al.args}, nil
}

func renderPredicate(p domain.Predicate, al *argList) (string, error) {
	if len(p.Fields) == 0 {
		return "", fmt.Errorf("predicate has no fields")
	}
	cols := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		col, ok := articleColumns[f]
		if !ok {
			return "", fmt.Errorf("unknown article field %q", f)
		}
		cols[i] = col
	}

	switch p.Op {
	case domain.OpEquals:
		return fmt.Sprintf("%s = %s", cols[0], al.add(p.Value)), nil
	case domain.OpIn:
		return fmt.Sprintf("%s = ANY(%s)", cols[0], al.add(p.Values)), nil
	case domain.OpContainsFold:
		placeholder := al.add("%" + escapeLike(p.Value) + "%")
		parts := make([]string, len(cols))
		for i, c := range cols {
			parts[i] = fmt.Sprintf("%s ILIKE %s", c, placeholder)
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil
	case domain.OpOnOrAfter:
		return fmt.Sprintf("%s >= %s", cols[0], al.add(p.Time)), nil
	case domain.OpOnOrBefore:
		return fmt.Sprintf("%s <= %s", cols[0], al.add(p.Time)), nil
	}
	return "", fmt.Errorf("unsupported predicate op %d", p.Op)
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
// Postgres uses backslash as the default LIKE escape character.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// selectSQL returns the page query and the count query for r.
func (r renderedQuery) selectSQL(page domain.Page) (string, []any, string) {
	limitPos := len(r.args) + 1
	list := fmt.Sprintf(`SELECT %s FROM articles %s ORDER BY published_at DESC, id DESC LIMIT $%d OFFSET $%d;`,
		articleSelectColumns, r.where, limitPos, limitPos+1)
	count := fmt.Sprintf(`SELECT COUNT(*) FROM articles %s;`, r.where)

	args := make([]any, 0, len(r.args)+2)
	args = append(args, r.args...)
	args = append(args, page.Limit, page.Offset)
	return list, args, count
}
