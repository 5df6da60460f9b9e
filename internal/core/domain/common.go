package domain

import "time"

// Timestamps holds the standard bookkeeping times for persisted entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is a normalised limit/offset window.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage clamps limit to [1, MaxPageLimit] and offset to >= 0.
// A non-positive limit selects DefaultPageLimit.
func NewPage(limit, offset int) Page {
	switch {
	case limit <= 0:
		limit = DefaultPageLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}
