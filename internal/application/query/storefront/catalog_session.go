// internal/application/query/storefront/catalog_session.go
package storefront

import (
	"context"
	"log"
	"net/url"
	"sync"
	"time"

	dto "voltmart/internal/application/query/storefront/dto"

	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/i18n"
	"voltmart/internal/platform/sched"
)

// DefaultFetchDelay is the quiet period between the last filter change and
// the fetch it coalesces into.
const DefaultFetchDelay = 300 * time.Millisecond

// CatalogSession holds the interactive listing state for one client session:
// the composite query, its latest resolved page, and the scheduling pieces
// that keep rapid filter changes from producing redundant or out-of-order
// fetches. Changes route through the setters; each one reschedules a single
// debounced fetch, and responses carry a ticket so a slow earlier response
// can never overwrite a newer one.
type CatalogSession struct {
	gateway CatalogGateway
	locale  i18n.Locale

	debouncer *sched.Debouncer
	sequencer *sched.Sequencer

	mu     sync.Mutex
	query  catalog.Query
	result dto.ProductPageDTO
	err    error
	closed bool
}

// CatalogSessionOption configures a CatalogSession.
type CatalogSessionOption func(*CatalogSession)

// WithFetchClock substitutes the scheduling clock.
func WithFetchClock(clock sched.Clock) CatalogSessionOption {
	return func(s *CatalogSession) {
		s.debouncer = sched.NewDebouncerWithClock(DefaultFetchDelay, clock)
	}
}

// WithFetchDelay overrides the debounce quiet period.
func WithFetchDelay(delay time.Duration) CatalogSessionOption {
	return func(s *CatalogSession) {
		s.debouncer = sched.NewDebouncer(delay)
	}
}

func NewCatalogSession(gateway CatalogGateway, locale i18n.Locale, opts ...CatalogSessionOption) *CatalogSession {
	s := &CatalogSession{
		gateway:   gateway,
		locale:    locale,
		debouncer: sched.NewDebouncer(DefaultFetchDelay),
		sequencer: &sched.Sequencer{},
		query:     catalog.DefaultQuery(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the whole query at once, as when entering from a shared
// URL, and schedules the fetch for it.
func (s *CatalogSession) Restore(values url.Values) {
	s.update(func(q catalog.Query) catalog.Query {
		return catalog.DecodeQuery(values)
	})
}

// SetSearch replaces the text filter and resets paging.
func (s *CatalogSession) SetSearch(term string) {
	s.update(func(q catalog.Query) catalog.Query { return q.WithSearch(term) })
}

// ToggleCategory flips one category id in the filter set and resets paging.
func (s *CatalogSession) ToggleCategory(id int64) {
	s.update(func(q catalog.Query) catalog.Query { return q.WithCategoryToggled(id) })
}

// SetPriceRange replaces the price bounds and resets paging.
func (s *CatalogSession) SetPriceRange(min, max float64) {
	s.update(func(q catalog.Query) catalog.Query { return q.WithPriceRange(min, max) })
}

// SetSort replaces the sort direction and resets paging.
func (s *CatalogSession) SetSort(dir catalog.SortDirection) {
	s.update(func(q catalog.Query) catalog.Query { return q.WithSort(dir) })
}

// SetPage moves to another page of the current filters.
func (s *CatalogSession) SetPage(page int) {
	s.update(func(q catalog.Query) catalog.Query { return q.WithPage(page) })
}

// Query returns the current composite query.
func (s *CatalogSession) Query() catalog.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// URLValues encodes the current query for the address bar. The encoding
// omits defaults, so a pristine session encodes to nothing.
func (s *CatalogSession) URLValues() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.Encode()
}

// Result returns the last page that was allowed to land, together with the
// error of the last failed fetch if the page is stale because of it.
func (s *CatalogSession) Result() (dto.ProductPageDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.err
}

// Close cancels any pending fetch. Responses already in flight are still
// discarded by their ticket when they land after a newer one.
func (s *CatalogSession) Close() {
	s.debouncer.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *CatalogSession) update(fn func(catalog.Query) catalog.Query) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.query = fn(s.query)
	q := s.query
	s.mu.Unlock()

	s.debouncer.Trigger(func() { s.fetch(q) })
}

func (s *CatalogSession) fetch(q catalog.Query) {
	seq := s.sequencer.Issue()

	page, err := s.gateway.SearchProducts(context.Background(), q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sequencer.TryApply(seq) {
		log.Printf("[catalog-session] discard stale response seq=%d", seq)
		return
	}
	if err != nil {
		s.err = err
		return
	}
	s.result = localizePage(page, s.locale)
	s.err = nil
}
