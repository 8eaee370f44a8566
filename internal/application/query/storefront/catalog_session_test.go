package storefront

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voltmart/internal/domain/catalog"
	"voltmart/internal/domain/i18n"
	"voltmart/internal/domain/product"
	"voltmart/internal/platform/sched"
)

// -------------------------
// fakes
// -------------------------

// sessionClock mirrors the deterministic clock used by the scheduling tests:
// scheduled funcs run only when advanced.
type sessionClock struct {
	mu   sync.Mutex
	now  time.Duration
	next int
	due  map[int]*sessionTimer
}

type sessionTimer struct {
	clock    *sessionClock
	id       int
	deadline time.Duration
	fn       func()
}

func newSessionClock() *sessionClock {
	return &sessionClock{due: map[int]*sessionTimer{}}
}

func (c *sessionClock) AfterFunc(d time.Duration, f func()) sched.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	t := &sessionTimer{clock: c, id: c.next, deadline: c.now + d, fn: f}
	c.due[t.id] = t
	return t
}

func (t *sessionTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	_, armed := t.clock.due[t.id]
	delete(t.clock.due, t.id)
	return armed
}

func (c *sessionClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var fire []*sessionTimer
	for id, t := range c.due {
		if t.deadline <= c.now {
			fire = append(fire, t)
			delete(c.due, id)
		}
	}
	c.mu.Unlock()

	sort.Slice(fire, func(i, j int) bool { return fire[i].deadline < fire[j].deadline })
	for _, t := range fire {
		t.fn()
	}
}

type fakeCatalogGateway struct {
	mu      sync.Mutex
	queries []catalog.Query
	pages   map[string]product.Page
	err     error

	// when gate is non-nil, SearchProducts for a matching term blocks until
	// the term's channel is closed
	gate map[string]chan struct{}
}

func newFakeCatalogGateway() *fakeCatalogGateway {
	return &fakeCatalogGateway{pages: map[string]product.Page{}}
}

func (f *fakeCatalogGateway) page(term string, names ...string) {
	p := product.Page{TotalElements: int64(len(names)), TotalPages: 1}
	for i, n := range names {
		p.Content = append(p.Content, product.Product{ID: int64(i + 1), Name: i18n.Text{EN: n}, Price: 10})
	}
	f.pages[term] = p
}

func (f *fakeCatalogGateway) SearchProducts(_ context.Context, q catalog.Query) (product.Page, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	gate := f.gate[q.Search]
	err := f.err
	page := f.pages[q.Search]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return product.Page{}, err
	}
	return page, nil
}

func (f *fakeCatalogGateway) Categories(context.Context) ([]catalog.CategoryNode, error) {
	return nil, nil
}

func (f *fakeCatalogGateway) PopularProducts(context.Context) ([]product.Product, error) {
	return nil, nil
}

func (f *fakeCatalogGateway) MaxPrice(context.Context) (product.PriceRange, error) {
	return product.PriceRange{}, nil
}

func (f *fakeCatalogGateway) calls() []catalog.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]catalog.Query(nil), f.queries...)
}

// -------------------------
// debounce behavior
// -------------------------

func TestSessionCoalescesRapidChangesIntoOneFetch(t *testing.T) {
	clock := newSessionClock()
	gw := newFakeCatalogGateway()
	gw.page("cable", "Type 2 cable")
	s := NewCatalogSession(gw, i18n.LocaleEN, WithFetchClock(clock))

	// typing plus two filter clicks inside one quiet period
	s.SetSearch("cable")
	clock.Advance(100 * time.Millisecond)
	s.ToggleCategory(3)
	clock.Advance(100 * time.Millisecond)
	s.SetSort(catalog.SortDesc)
	clock.Advance(DefaultFetchDelay)

	calls := gw.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "cable", calls[0].Search)
	assert.Equal(t, []int64{3}, calls[0].CategoryIDs)
	assert.Equal(t, catalog.SortDesc, calls[0].Sort)

	page, err := s.Result()
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Type 2 cable", page.Content[0].Name)
}

func TestSessionFetchesAgainAfterQuietPeriod(t *testing.T) {
	clock := newSessionClock()
	gw := newFakeCatalogGateway()
	s := NewCatalogSession(gw, i18n.LocaleEN, WithFetchClock(clock))

	s.SetSearch("a")
	clock.Advance(DefaultFetchDelay)
	s.SetPage(2)
	clock.Advance(DefaultFetchDelay)

	calls := gw.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, 0, calls[0].Page)
	assert.Equal(t, 2, calls[1].Page)
}

func TestSessionCloseCancelsPendingFetch(t *testing.T) {
	clock := newSessionClock()
	gw := newFakeCatalogGateway()
	s := NewCatalogSession(gw, i18n.LocaleEN, WithFetchClock(clock))

	s.SetSearch("a")
	s.Close()
	clock.Advance(time.Second)

	assert.Empty(t, gw.calls())

	s.SetSearch("b")
	clock.Advance(time.Second)
	assert.Empty(t, gw.calls())
}

// -------------------------
// stale-response protection
// -------------------------

func TestSessionDiscardsStaleResponse(t *testing.T) {
	gw := newFakeCatalogGateway()
	gw.page("a", "old result")
	gw.page("b", "new result")
	gateA := make(chan struct{})
	gw.gate = map[string]chan struct{}{"a": gateA}

	s := NewCatalogSession(gw, i18n.LocaleEN, WithFetchDelay(time.Millisecond))
	defer s.Close()

	// request a fires and hangs upstream
	s.SetSearch("a")
	require.Eventually(t, func() bool { return len(gw.calls()) == 1 }, time.Second, time.Millisecond)

	// request b fires and resolves first
	s.SetSearch("b")
	require.Eventually(t, func() bool {
		page, _ := s.Result()
		return len(page.Content) == 1 && page.Content[0].Name == "new result"
	}, time.Second, time.Millisecond)

	// a's response lands afterwards and must not overwrite b's
	close(gateA)
	time.Sleep(20 * time.Millisecond)
	page, err := s.Result()
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "new result", page.Content[0].Name)
}

// -------------------------
// query state and URL round trip
// -------------------------

func TestSessionURLValuesTrackState(t *testing.T) {
	clock := newSessionClock()
	s := NewCatalogSession(newFakeCatalogGateway(), i18n.LocaleEN, WithFetchClock(clock))

	assert.Empty(t, s.URLValues().Encode())

	s.ToggleCategory(3)
	s.ToggleCategory(5)
	s.SetPage(2)
	s.SetSearch("charger")

	// the search change reset paging, so page is absent from the URL
	v := s.URLValues()
	assert.Equal(t, "charger", v.Get("search"))
	assert.Equal(t, "3,5", v.Get("categories"))
	assert.Empty(t, v.Get("page"))
}

func TestSessionRestoreFromURL(t *testing.T) {
	clock := newSessionClock()
	gw := newFakeCatalogGateway()
	s := NewCatalogSession(gw, i18n.LocaleEN, WithFetchClock(clock))

	v, err := url.ParseQuery("search=cable&categories=3,5&sort=desc&page=2")
	require.NoError(t, err)
	s.Restore(v)
	clock.Advance(DefaultFetchDelay)

	calls := gw.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "cable", calls[0].Search)
	assert.Equal(t, []int64{3, 5}, calls[0].CategoryIDs)
	assert.Equal(t, catalog.SortDesc, calls[0].Sort)
	assert.Equal(t, 2, calls[0].Page)
}

func TestSessionKeepsLastPageOnFetchError(t *testing.T) {
	clock := newSessionClock()
	gw := newFakeCatalogGateway()
	gw.page("ok", "Type 2 cable")
	s := NewCatalogSession(gw, i18n.LocaleEN, WithFetchClock(clock))

	s.SetSearch("ok")
	clock.Advance(DefaultFetchDelay)

	gw.mu.Lock()
	gw.err = errors.New("upstream 502")
	gw.mu.Unlock()

	s.SetSearch("broken")
	clock.Advance(DefaultFetchDelay)

	page, err := s.Result()
	assert.Error(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Type 2 cable", page.Content[0].Name)
}
