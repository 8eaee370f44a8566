package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQueryEncodesEmpty(t *testing.T) {
	v := DefaultQuery().Encode()
	assert.Empty(t, v.Encode())
}

func TestEncodeOmitsDefaults(t *testing.T) {
	q := Query{
		Search:      "cable",
		CategoryIDs: []int64{3, 5},
		Sort:        SortAsc,
		Page:        0,
	}
	v := q.Encode()

	assert.Equal(t, "cable", v.Get("search"))
	assert.Equal(t, "3,5", v.Get("categories"))
	assert.False(t, v.Has("minPrice"))
	assert.False(t, v.Has("maxPrice"))
	assert.False(t, v.Has("sort"))
	assert.False(t, v.Has("page"))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Query{
		DefaultQuery(),
		{Search: "type 2 cable", Sort: SortAsc},
		{CategoryIDs: []int64{7, 2, 19}, Sort: SortAsc},
		{MinPrice: 10, MaxPrice: 249.99, Sort: SortAsc},
		{Search: "adapter", CategoryIDs: []int64{4}, MinPrice: 5.5, MaxPrice: 120, Sort: SortDesc, Page: 3},
		{Sort: SortDesc},
		{Page: 12, Sort: SortAsc},
	}

	for _, want := range cases {
		got := DecodeQuery(want.Encode())
		assert.Equal(t, want, got, "round trip for %+v", want)
	}
}

func TestDecodeMalformedFallsBack(t *testing.T) {
	v := url.Values{}
	v.Set("minPrice", "cheap")
	v.Set("maxPrice", "-40")
	v.Set("page", "two")
	v.Set("sort", "sideways")
	v.Set("categories", "1,x,2,,-3,2")

	q := DecodeQuery(v)

	assert.Zero(t, q.MinPrice)
	assert.Zero(t, q.MaxPrice)
	assert.Zero(t, q.Page)
	assert.Equal(t, SortAsc, q.Sort)
	assert.Equal(t, []int64{1, 2}, q.CategoryIDs)
}

func TestDecodeNilValues(t *testing.T) {
	assert.Equal(t, DefaultQuery(), DecodeQuery(nil))
}

func TestSettersResetPage(t *testing.T) {
	base := Query{CategoryIDs: []int64{3, 5}, Sort: SortAsc, Page: 2}

	assert.Zero(t, base.WithSearch("charger").Page)
	assert.Zero(t, base.WithCategoryToggled(9).Page)
	assert.Zero(t, base.WithPriceRange(1, 9).Page)
	assert.Zero(t, base.WithSort(SortDesc).Page)
}

func TestSearchChangeKeepsFiltersDropsPageFromURL(t *testing.T) {
	q := Query{CategoryIDs: []int64{3, 5}, Sort: SortAsc, Page: 2}

	v := q.WithSearch("cable").Encode()

	assert.Equal(t, "cable", v.Get("search"))
	assert.Equal(t, "3,5", v.Get("categories"))
	assert.False(t, v.Has("page"))
}

func TestWithPageLeavesFiltersUntouched(t *testing.T) {
	base := Query{Search: "plug", CategoryIDs: []int64{1}, MinPrice: 2, MaxPrice: 30, Sort: SortDesc, Page: 0}

	got := base.WithPage(4)

	want := base
	want.Page = 4
	assert.Equal(t, want, got)

	assert.Zero(t, base.WithPage(-1).Page)
}

func TestWithCategoryToggled(t *testing.T) {
	q := DefaultQuery()

	q = q.WithCategoryToggled(3)
	q = q.WithCategoryToggled(5)
	assert.Equal(t, []int64{3, 5}, q.CategoryIDs)
	assert.True(t, q.HasCategory(3))

	// toggling an already-selected id removes it, order of the rest preserved
	q = q.WithCategoryToggled(3)
	assert.Equal(t, []int64{5}, q.CategoryIDs)
	assert.False(t, q.HasCategory(3))
}

func TestWithSortNormalizes(t *testing.T) {
	q := DefaultQuery().WithSort(SortDirection("bogus"))
	require.Equal(t, SortAsc, q.Sort)
	assert.Equal(t, SortDesc, q.WithSort(SortDesc).Sort)
}
