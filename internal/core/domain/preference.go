package domain

import "strings"

// Preference holds a user's content preferences. Each list behaves as a set.
type Preference struct {
	ID                  string   `json:"id"`
	UserID              string   `json:"userId"`
	PreferredSources    []string `json:"preferredSources"`
	PreferredCategories []string `json:"preferredCategories"`
	PreferredAuthors    []string `json:"preferredAuthors"`
	Timestamps
}

// IsEmpty reports whether no preference has been expressed at all.
func (p Preference) IsEmpty() bool {
	return len(p.PreferredSources) == 0 && len(p.PreferredCategories) == 0 && len(p.PreferredAuthors) == 0
}

// Normalize trims every value, drops empties and removes duplicates. Author
// names match case-insensitively, so they are deduplicated the same way.
func (p *Preference) Normalize() {
	p.PreferredSources = NormalizeSet(p.PreferredSources)
	p.PreferredCategories = NormalizeSet(p.PreferredCategories)
	p.PreferredAuthors = NormalizeFoldSet(p.PreferredAuthors)
}

// PreferenceUpdate is a partial replacement; nil lists are left unchanged.
type PreferenceUpdate struct {
	PreferredSources    *[]string
	PreferredCategories *[]string
	PreferredAuthors    *[]string
}

// Apply replaces the lists present in u and normalises the result.
func (p *Preference) Apply(u PreferenceUpdate) {
	if u.PreferredSources != nil {
		p.PreferredSources = *u.PreferredSources
	}
	if u.PreferredCategories != nil {
		p.PreferredCategories = *u.PreferredCategories
	}
	if u.PreferredAuthors != nil {
		p.PreferredAuthors = *u.PreferredAuthors
	}
	p.Normalize()
}

// NormalizeSet keeps the first occurrence order and never returns nil.
func NormalizeSet(values []string) []string {
	return normalizeSet(values, func(v string) string { return v })
}

// NormalizeFoldSet is NormalizeSet with case-insensitive duplicate detection.
// The first spelling seen is the one kept.
func NormalizeFoldSet(values []string) []string {
	return normalizeSet(values, strings.ToLower)
}

func normalizeSet(values []string, key func(string) string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}
