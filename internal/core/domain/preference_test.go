package domain_test

import (
	"testing"

	"github.com/SscSPs/news_aggregator_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSet(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "nil input", values: nil, want: []string{}},
		{name: "trims and drops empties", values: []string{" bbc-news ", "", "   "}, want: []string{"bbc-news"}},
		{name: "keeps first occurrence order", values: []string{"tech", "sports", "tech", " sports"}, want: []string{"tech", "sports"}},
		{name: "case sensitive", values: []string{"Tech", "tech"}, want: []string{"Tech", "tech"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeSet(tt.values))
		})
	}
}

func TestNormalizeFoldSet(t *testing.T) {
	got := domain.NormalizeFoldSet([]string{"Alice Smith", " ALICE SMITH", "alice smith", "Bob", ""})
	assert.Equal(t, []string{"Alice Smith", "Bob"}, got)
	assert.Equal(t, []string{}, domain.NormalizeFoldSet(nil))
}

func TestPreference_Apply(t *testing.T) {
	p := domain.Preference{
		PreferredSources:    []string{"cnn"},
		PreferredCategories: []string{"business"},
	}
	cats := []string{"technology", "technology", ""}
	p.Apply(domain.PreferenceUpdate{PreferredCategories: &cats})

	assert.Equal(t, []string{"cnn"}, p.PreferredSources)
	assert.Equal(t, []string{"technology"}, p.PreferredCategories)
	assert.Equal(t, []string{}, p.PreferredAuthors)
	assert.False(t, p.IsEmpty())

	authors := []string{"ALICE", "alice", "Alice"}
	p.Apply(domain.PreferenceUpdate{PreferredAuthors: &authors})
	assert.Equal(t, []string{"ALICE"}, p.PreferredAuthors)

	empty := []string{}
	p.Apply(domain.PreferenceUpdate{PreferredSources: &empty, PreferredCategories: &empty, PreferredAuthors: &empty})
	assert.True(t, p.IsEmpty())
}
