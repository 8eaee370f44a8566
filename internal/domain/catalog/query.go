// internal/domain/catalog/query.go
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// SortDirection orders the product listing by price.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// URL parameter names (the shareable catalog URL surface).
const (
	paramSearch     = "search"
	paramCategories = "categories"
	paramMinPrice   = "minPrice"
	paramMaxPrice   = "maxPrice"
	paramSort       = "sort"
	paramPage       = "page"
)

// Query is the composite catalog filter/sort/pagination state.
//
// The URL is the source of truth on load (DecodeQuery), in-memory state is the
// source of truth during interaction, and every change re-serializes via
// Encode. Zero values are the defaults and are omitted from URLs.
type Query struct {
	Search      string
	CategoryIDs []int64
	MinPrice    float64
	MaxPrice    float64
	Sort        SortDirection
	Page        int
}

// DefaultQuery returns the state an unparameterized catalog URL maps to.
func DefaultQuery() Query {
	return Query{Sort: SortAsc}
}

// DecodeQuery reads every recognized parameter from values.
// Malformed or unrecognized values fall back to their defaults, never error.
func DecodeQuery(values url.Values) Query {
	q := DefaultQuery()
	if values == nil {
		return q
	}

	q.Search = strings.TrimSpace(values.Get(paramSearch))

	if raw := strings.TrimSpace(values.Get(paramCategories)); raw != "" {
		seen := map[int64]bool{}
		for _, tok := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
			if err != nil || id <= 0 || seen[id] {
				continue
			}
			seen[id] = true
			q.CategoryIDs = append(q.CategoryIDs, id)
		}
	}

	q.MinPrice = parsePriceDefault(values.Get(paramMinPrice), 0)
	q.MaxPrice = parsePriceDefault(values.Get(paramMaxPrice), 0)

	if strings.EqualFold(strings.TrimSpace(values.Get(paramSort)), string(SortDesc)) {
		q.Sort = SortDesc
	}

	if p, err := strconv.Atoi(strings.TrimSpace(values.Get(paramPage))); err == nil && p > 0 {
		q.Page = p
	}

	return q
}

// Encode serializes the state to URL parameters, omitting a field when it
// equals its default/empty value. page is omitted when 0 so default URLs stay
// clean. Encode then DecodeQuery yields an equivalent Query.
func (q Query) Encode() url.Values {
	v := url.Values{}

	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set(paramSearch, s)
	}
	if len(q.CategoryIDs) > 0 {
		toks := make([]string, 0, len(q.CategoryIDs))
		for _, id := range q.CategoryIDs {
			toks = append(toks, strconv.FormatInt(id, 10))
		}
		v.Set(paramCategories, strings.Join(toks, ","))
	}
	if q.MinPrice > 0 {
		v.Set(paramMinPrice, formatPrice(q.MinPrice))
	}
	if q.MaxPrice > 0 {
		v.Set(paramMaxPrice, formatPrice(q.MaxPrice))
	}
	if q.Sort == SortDesc {
		v.Set(paramSort, string(SortDesc))
	}
	if q.Page > 0 {
		v.Set(paramPage, strconv.Itoa(q.Page))
	}

	return v
}

// ----------------------------
// Setters
// ----------------------------
// Every setter other than WithPage resets Page to 0: a filter change restarts
// pagination from the first page.

// WithSearch replaces the search text.
func (q Query) WithSearch(text string) Query {
	q.Search = strings.TrimSpace(text)
	q.Page = 0
	return q
}

// WithCategoryToggled toggles id in the category selection: an already-selected
// id is removed, a new id is appended. No parent/child propagation.
func (q Query) WithCategoryToggled(id int64) Query {
	out := make([]int64, 0, len(q.CategoryIDs)+1)
	found := false
	for _, c := range q.CategoryIDs {
		if c == id {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		out = append(out, id)
	}
	q.CategoryIDs = out
	q.Page = 0
	return q
}

// WithPriceRange replaces the selected price range.
// Bounds are not clamped against the slider range; the server applies its own
// limits.
func (q Query) WithPriceRange(min, max float64) Query {
	q.MinPrice = min
	q.MaxPrice = max
	q.Page = 0
	return q
}

// WithSort replaces the sort direction.
func (q Query) WithSort(dir SortDirection) Query {
	if dir != SortDesc {
		dir = SortAsc
	}
	q.Sort = dir
	q.Page = 0
	return q
}

// WithPage replaces only the page; all other fields are left untouched.
func (q Query) WithPage(page int) Query {
	if page < 0 {
		page = 0
	}
	q.Page = page
	return q
}

// HasCategory reports whether id is currently selected.
func (q Query) HasCategory(id int64) bool {
	for _, c := range q.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}

// ----------------------------
// Helpers
// ----------------------------

func parsePriceDefault(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}

func formatPrice(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
