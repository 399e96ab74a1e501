// Package pagination provides the page/limit types shared by catalog list
// endpoints, plus the windowed page-number strip the list pages render.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1

	// maxVisiblePages is how many page buttons fit before ellipses kick in.
	maxVisiblePages = 5

	// maxOffset keeps Offset()+Limit representable for any page number.
	maxOffset = math.MaxInt - MaxLimit
)

// Params holds a clamped page and limit.
type Params struct {
	Page  int
	Limit int
}

// NewParams clamps page and limit to valid values.
func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
// An invalid page falls back to the first one. Limit is left at 0 when it is
// missing or out of range so the caller can apply its own page size.
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	limit := parseIntParam(r, "limit", 0)
	if limit < 1 || limit > MaxLimit {
		limit = 0
	}

	return Params{Page: page, Limit: limit}
}

// Offset returns the index of the first item on the page. Page numbers too
// large to address saturate at an offset past any real collection.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > maxOffset/p.Limit {
		return maxOffset
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
	// From and To are the 1-based bounds of the items shown ("Showing 21-40").
	From int `json:"from"`
	To   int `json:"to"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(p Params, total int) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}

	from := p.Offset() + 1
	to := p.Offset() + p.Limit
	if to > total {
		to = total
	}
	if from > to {
		from = 0
	}

	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
		From:       from,
		To:         to,
	}
}

// Slice returns the items on the requested page. Pages past the end are empty.
func Slice[T any](items []T, p Params) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) || p.Limit <= 0 {
		return []T{}
	}

	end := len(items)
	if p.Limit < end-start {
		end = start + p.Limit
	}

	return items[start:end]
}

// PageItem is one entry of the page-number strip. Ellipsis entries have
// Number == 0.
type PageItem struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// PageNumbers builds the page strip for current out of total pages: every
// page when there are at most five, otherwise the first and last page with a
// window around the current one.
func PageNumbers(current, total int) []PageItem {
	var numbers []int
	const gap = 0

	switch {
	case total <= maxVisiblePages:
		for i := 1; i <= total; i++ {
			numbers = append(numbers, i)
		}
	case current <= 3:
		numbers = []int{1, 2, 3, 4, gap, total}
	case current >= total-2:
		numbers = []int{1, gap, total - 3, total - 2, total - 1, total}
	default:
		numbers = []int{1, gap, current - 1, current, current + 1, gap, total}
	}

	items := make([]PageItem, len(numbers))
	for i, n := range numbers {
		if n == gap {
			items[i] = PageItem{Ellipsis: true}
			continue
		}
		items[i] = PageItem{Number: n, Current: n == current}
	}

	return items
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
