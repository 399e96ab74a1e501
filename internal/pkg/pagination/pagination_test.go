package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
)

func TestNewParams_Clamps(t *testing.T) {
	assert.Equal(t, pagination.Params{Page: 1, Limit: 20}, pagination.NewParams(0, 0))
	assert.Equal(t, pagination.Params{Page: 1, Limit: 20}, pagination.NewParams(-3, 500))
	assert.Equal(t, pagination.Params{Page: 4, Limit: 50}, pagination.NewParams(4, 50))
}

func TestFromRequest(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected pagination.Params
	}{
		{name: "defaults leave limit to the caller", url: "/characters", expected: pagination.Params{Page: 1, Limit: 0}},
		{name: "explicit", url: "/characters?page=3&limit=10", expected: pagination.Params{Page: 3, Limit: 10}},
		{name: "garbage falls back", url: "/characters?page=abc&limit=xyz", expected: pagination.Params{Page: 1, Limit: 0}},
		{name: "negative page", url: "/characters?page=-4", expected: pagination.Params{Page: 1, Limit: 0}},
		{name: "limit too large", url: "/characters?limit=1000", expected: pagination.Params{Page: 1, Limit: 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			assert.Equal(t, tc.expected, pagination.FromRequest(r))
		})
	}
}

func TestNewMeta(t *testing.T) {
	meta := pagination.NewMeta(pagination.NewParams(2, 20), 45)
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 20, Total: 45, TotalPages: 3, From: 21, To: 40}, meta)

	last := pagination.NewMeta(pagination.NewParams(3, 20), 45)
	assert.Equal(t, 41, last.From)
	assert.Equal(t, 45, last.To)

	empty := pagination.NewMeta(pagination.NewParams(1, 20), 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, 0, empty.From)
	assert.Equal(t, 0, empty.To)
}

func TestSlice(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	first := pagination.Slice(items, pagination.NewParams(1, 20))
	assert.Len(t, first, 20)
	assert.Equal(t, 0, first[0])

	last := pagination.Slice(items, pagination.NewParams(3, 20))
	assert.Equal(t, []int{40, 41, 42, 43, 44}, last)

	beyond := pagination.Slice(items, pagination.NewParams(9, 20))
	assert.NotNil(t, beyond)
	assert.Empty(t, beyond)
}

func TestHugePageNumbers(t *testing.T) {
	items := []int{1, 2, 3}

	testCases := []struct {
		name string
		page int
	}{
		{name: "offset would overflow", page: 461168601842738792},
		{name: "max int", page: math.MaxInt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := pagination.NewParams(tc.page, 20)

			assert.GreaterOrEqual(t, params.Offset(), 0)
			assert.NotPanics(t, func() {
				assert.Empty(t, pagination.Slice(items, params))
			})

			meta := pagination.NewMeta(params, len(items))
			assert.Equal(t, 0, meta.From)
			assert.Equal(t, 3, meta.To)
			assert.Equal(t, 1, meta.TotalPages)
		})
	}
}

func TestSlice_ZeroLimit(t *testing.T) {
	assert.Empty(t, pagination.Slice([]int{1, 2, 3}, pagination.Params{Page: 1}))
}

func numbersOf(items []pagination.PageItem) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.Number
	}
	return out
}

func TestPageNumbers(t *testing.T) {
	testCases := []struct {
		name     string
		current  int
		total    int
		expected []int
	}{
		{name: "no pages", current: 1, total: 0, expected: []int{}},
		{name: "few pages", current: 2, total: 4, expected: []int{1, 2, 3, 4}},
		{name: "exactly five", current: 5, total: 5, expected: []int{1, 2, 3, 4, 5}},
		{name: "near start", current: 3, total: 20, expected: []int{1, 2, 3, 4, 0, 20}},
		{name: "near end", current: 18, total: 20, expected: []int{1, 0, 17, 18, 19, 20}},
		{name: "middle", current: 10, total: 20, expected: []int{1, 0, 9, 10, 11, 0, 20}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := pagination.PageNumbers(tc.current, tc.total)
			assert.Equal(t, tc.expected, numbersOf(items))

			for _, item := range items {
				assert.Equal(t, item.Number == 0, item.Ellipsis)
				assert.Equal(t, item.Number == tc.current && !item.Ellipsis, item.Current)
			}
		})
	}
}
