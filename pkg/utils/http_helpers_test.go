package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQueryDefaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 0, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Sort)
	assert.Empty(t, filter.Filter)
}

func TestParseFilterFromQueryLimitCap(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{"limit": {"9000"}})
	assert.Equal(t, MaxLimit, filter.Limit)

	filter = ParseFilterFromQuery(url.Values{"limit": {"25"}})
	assert.Equal(t, 25, filter.Limit)

	filter = ParseFilterFromQuery(url.Values{"limit": {"-3"}})
	assert.Equal(t, DefaultLimit, filter.Limit, "non-positive limits fall back to the default")
}

func TestParseFilterFromQueryPageToOffset(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{"page": {"3"}, "limit": {"50"}})

	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 100, filter.Offset)

	filter = ParseFilterFromQuery(url.Values{"page": {"3"}, "offset": {"7"}})
	assert.Equal(t, 7, filter.Offset, "an explicit offset wins over the page computation")
}

func TestParseFilterFromQuerySortAndFilter(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{
		"search":          {"latitude"},
		"sort[brand]":     {"DESC"},
		"sort[model]":     {"sideways"},
		"filter[status]":  {"ACTIVE"},
		"filter[area_id]": {"4"},
	})

	assert.Equal(t, "latitude", filter.Search)
	assert.Equal(t, map[string]string{"brand": "desc"}, filter.Sort, "invalid directions are dropped")
	assert.Equal(t, "ACTIVE", filter.Filter["status"])
	assert.Equal(t, "4", filter.Filter["area_id"])
}

func TestParseFilterFromQueryPaginationToggle(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{"withPagination": {"false"}})
	assert.False(t, filter.WithPagination)

	filter = ParseFilterFromQuery(url.Values{"withPagination": {"true"}})
	assert.True(t, filter.WithPagination)
}
