package models

import "math"

const (
	// DefaultPageLimit replaces any non-positive limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the number of records a single page may request.
	MaxPageLimit = 100
)

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize coerces a non-positive limit to DefaultPageLimit, caps it at
// MaxPageLimit and turns a negative page into 0. A page whose offset would
// not fit in a signed 64-bit OFFSET is pinned to the last representable one,
// which lists nothing.
func (p PageRequest) Normalize() PageRequest {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	p.Limit = min(p.Limit, MaxPageLimit)
	if p.Page < 0 {
		p.Page = 0
	}
	if maxPage := math.MaxInt64 / int64(p.Limit); int64(p.Page) > maxPage {
		p.Page = int(maxPage)
	}
	return p
}

// Offset is the number of records skipped before this page.
func (p PageRequest) Offset() uint64 {
	return uint64(p.Page) * uint64(p.Limit)
}

// Page is the envelope returned by list and search endpoints.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPage wraps items fetched for req. totalPages is ceil(total/limit).
func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}

	limit := int64(req.Limit)
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + limit - 1) / limit)
	}

	return Page[T]{
		Data:       items,
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
