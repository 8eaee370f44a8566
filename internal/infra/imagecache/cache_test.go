package imagecache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrigin struct {
	calls int
	data  map[int64][]byte
	err   error
}

func (f *fakeOrigin) FetchImage(_ context.Context, id int64) ([]byte, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	d, ok := f.data[id]
	if !ok {
		return nil, "", errors.New("no such image")
	}
	return d, "image/png", nil
}

type fakeStore struct {
	gets, puts int
	objects    map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, string, bool, error) {
	f.gets++
	d, ok := f.objects[key]
	if !ok {
		return nil, "", false, nil
	}
	return d, "image/png", true, nil
}

func (f *fakeStore) Put(_ context.Context, key string, data []byte, _ string) error {
	f.puts++
	f.objects[key] = data
	return nil
}

func TestCacheFetchesOriginOnceAndServesMemory(t *testing.T) {
	origin := &fakeOrigin{data: map[int64][]byte{7: []byte("png-bytes")}}
	c := New(origin, nil)

	img, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), img.Data)
	assert.Equal(t, "image/png", img.ContentType)

	_, err = c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, origin.calls)
}

func TestCacheWritesThroughToStore(t *testing.T) {
	origin := &fakeOrigin{data: map[int64][]byte{7: []byte("png-bytes")}}
	store := newFakeStore()
	c := New(origin, store)

	_, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, store.puts)
	assert.Contains(t, store.objects, "7")
}

func TestCacheServesStoreWithoutOrigin(t *testing.T) {
	origin := &fakeOrigin{}
	store := newFakeStore()
	store.objects["7"] = []byte("persisted")
	c := New(origin, store)

	img, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), img.Data)
	assert.Zero(t, origin.calls)

	// promoted to memory: the store is not consulted again
	_, err = c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 1, store.gets)
}

func TestCacheOriginErrorPropagates(t *testing.T) {
	origin := &fakeOrigin{err: errors.New("upstream down")}
	c := New(origin, nil)

	_, err := c.Get(context.Background(), 7)
	assert.Error(t, err)
	assert.Zero(t, c.Len())
}

func TestCacheEvictsOldestBeyondLimit(t *testing.T) {
	origin := &fakeOrigin{data: map[int64][]byte{}}
	for i := int64(1); i <= 4; i++ {
		origin.data[i] = []byte{byte(i)}
	}
	c := New(origin, nil)
	c.maxEntries = 2

	for i := int64(1); i <= 4; i++ {
		_, err := c.Get(context.Background(), i)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())

	// 1 was evicted, so requesting it hits the origin again
	calls := origin.calls
	_, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, calls+1, origin.calls)
}
