package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/altsource/altsource/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal in-memory contract.CacheStore for tests.
type memStore struct {
	entries map[string]memEntry
}

type memEntry struct {
	data      []byte
	version   int
	timestamp int64
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]memEntry)}
}

func (s *memStore) Get(key string) ([]byte, int, int64, error) {
	e, ok := s.entries[key]
	if !ok {
		return nil, 0, 0, nil
	}
	return e.data, e.version, e.timestamp, nil
}

func (s *memStore) Set(key string, value []byte, version int, timestamp int64) error {
	s.entries[key] = memEntry{data: value, version: version, timestamp: timestamp}
	return nil
}

func (s *memStore) GetStatus() (schema.CacheStatus, error) { return schema.CacheStatus{}, nil }
func (s *memStore) Close() error                           { return nil }

// countingProvider counts pass-through calls.
type countingProvider struct {
	inner     *EmbeddedProvider
	getCalls  int
	findCalls int
}

func (p *countingProvider) GetPart(ctx context.Context, mpn string) (schema.PartAttributes, error) {
	p.getCalls++
	return p.inner.GetPart(ctx, mpn)
}

func (p *countingProvider) FindCandidates(ctx context.Context, source *schema.PartAttributes, limit int) ([]schema.PartAttributes, error) {
	p.findCalls++
	return p.inner.FindCandidates(ctx, source, limit)
}

func TestCachedProviderGetPart(t *testing.T) {
	counting := &countingProvider{inner: NewEmbeddedProvider()}
	cached := NewCachedProvider(counting, newMemStore(), time.Hour)

	ctx := context.Background()
	first, err := cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)

	second, err := cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)

	assert.Equal(t, 1, counting.getCalls)
	assert.Equal(t, first.Part.MPN, second.Part.MPN)
	assert.Equal(t, len(first.Attributes), len(second.Attributes))
}

func TestCachedProviderExpiry(t *testing.T) {
	counting := &countingProvider{inner: NewEmbeddedProvider()}
	store := newMemStore()
	cached := NewCachedProvider(counting, store, time.Hour)

	ctx := context.Background()
	_, err := cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)

	// Age the entry past the TTL; the next read must refetch.
	key := "part:BSS138"
	entry := store.entries[key]
	entry.timestamp = time.Now().Add(-2 * time.Hour).Unix()
	store.entries[key] = entry

	_, err = cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)
	assert.Equal(t, 2, counting.getCalls)
}

func TestCachedProviderVersionMismatch(t *testing.T) {
	counting := &countingProvider{inner: NewEmbeddedProvider()}
	store := newMemStore()
	cached := NewCachedProvider(counting, store, time.Hour)

	ctx := context.Background()
	_, err := cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)

	key := "part:BSS138"
	entry := store.entries[key]
	entry.version = cacheSchemaVersion + 1
	store.entries[key] = entry

	_, err = cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)
	assert.Equal(t, 2, counting.getCalls)
}

func TestCachedProviderFindCandidates(t *testing.T) {
	counting := &countingProvider{inner: NewEmbeddedProvider()}
	cached := NewCachedProvider(counting, newMemStore(), time.Hour)

	ctx := context.Background()
	source, err := cached.GetPart(ctx, "BSS138")
	require.NoError(t, err)

	first, err := cached.FindCandidates(ctx, &source, 5)
	require.NoError(t, err)
	second, err := cached.FindCandidates(ctx, &source, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, counting.findCalls)
	assert.Equal(t, len(first), len(second))

	// A different limit is a different cache entry.
	_, err = cached.FindCandidates(ctx, &source, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, counting.findCalls)
}

func TestCachedProviderMissPassesThroughErrors(t *testing.T) {
	counting := &countingProvider{inner: NewEmbeddedProvider()}
	cached := NewCachedProvider(counting, newMemStore(), time.Hour)

	_, err := cached.GetPart(context.Background(), "NOT-A-PART")
	assert.ErrorIs(t, err, ErrPartNotFound)
}
