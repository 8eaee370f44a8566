// internal/infra/imagecache/cache.go
package imagecache

import (
	"context"
	"log"
	"strconv"
	"sync"
)

// Image is one cached product image.
type Image struct {
	Data        []byte
	ContentType string
}

// Origin fetches an image from the commerce API when every cache misses.
type Origin interface {
	FetchImage(ctx context.Context, id int64) ([]byte, string, error)
}

// Store is an optional second-level persistent cache (GCS).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, string, bool, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// DefaultMaxEntries bounds the in-memory level.
const DefaultMaxEntries = 512

// Cache serves product images cache-first: memory, then the persistent
// store, then the origin. An image fetched from a lower level is written
// back to the levels above it, so repeat requests never re-download. The
// same image id always yields the same bytes upstream, so entries are never
// invalidated, only evicted.
type Cache struct {
	origin Origin
	store  Store // may be nil

	mu         sync.Mutex
	entries    map[string]Image
	order      []string // FIFO eviction
	maxEntries int
}

func New(origin Origin, store Store) *Cache {
	return &Cache{
		origin:     origin,
		store:      store,
		entries:    map[string]Image{},
		maxEntries: DefaultMaxEntries,
	}
}

// Get returns the image for id, loading and caching it on first use.
func (c *Cache) Get(ctx context.Context, id int64) (Image, error) {
	key := strconv.FormatInt(id, 10)

	c.mu.Lock()
	if img, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	if c.store != nil {
		data, ct, hit, err := c.store.Get(ctx, key)
		if err != nil {
			log.Printf("[imagecache] store get failed key=%s err=%v", key, err)
		} else if hit {
			img := Image{Data: data, ContentType: ct}
			c.remember(key, img)
			return img, nil
		}
	}

	data, ct, err := c.origin.FetchImage(ctx, id)
	if err != nil {
		return Image{}, err
	}
	img := Image{Data: data, ContentType: ct}

	c.remember(key, img)
	if c.store != nil {
		if err := c.store.Put(ctx, key, data, ct); err != nil {
			log.Printf("[imagecache] store put failed key=%s err=%v", key, err)
		}
	}
	return img, nil
}

func (c *Cache) remember(key string, img Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	c.entries[key] = img
	c.order = append(c.order, key)

	for len(c.order) > c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Len reports the in-memory entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
