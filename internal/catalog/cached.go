package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// cacheSchemaVersion invalidates stored entries whenever the serialized
// shape of PartAttributes changes.
const cacheSchemaVersion = 1

// CachedProvider wraps another provider with a TTL cache. Cache failures
// degrade to direct fetches with a warning; they never fail a request.
type CachedProvider struct {
	inner contract.PartProvider
	store contract.CacheStore
	ttl   time.Duration
}

// NewCachedProvider wraps a provider with the given cache store.
func NewCachedProvider(inner contract.PartProvider, store contract.CacheStore, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, store: store, ttl: ttl}
}

// GetPart returns a cached part when fresh, otherwise fetches and stores it.
func (p *CachedProvider) GetPart(ctx context.Context, mpn string) (schema.PartAttributes, error) {
	key := "part:" + normalizeMPN(mpn)

	var cached schema.PartAttributes
	if p.lookup(key, &cached) {
		return cached, nil
	}

	part, err := p.inner.GetPart(ctx, mpn)
	if err != nil {
		return schema.PartAttributes{}, err
	}
	p.save(key, part)
	return part, nil
}

// FindCandidates caches candidate lists per (category, source MPN, limit).
func (p *CachedProvider) FindCandidates(ctx context.Context, source *schema.PartAttributes, limit int) ([]schema.PartAttributes, error) {
	key := strings.Join([]string{
		"cand",
		strings.ToLower(source.Part.Category),
		normalizeMPN(source.Part.MPN),
		strconv.Itoa(limit),
	}, ":")

	var cached []schema.PartAttributes
	if p.lookup(key, &cached) {
		return cached, nil
	}

	candidates, err := p.inner.FindCandidates(ctx, source, limit)
	if err != nil {
		return nil, err
	}
	p.save(key, candidates)
	return candidates, nil
}

// lookup reports whether a fresh, version-compatible entry was decoded.
func (p *CachedProvider) lookup(key string, target any) bool {
	data, version, timestamp, err := p.store.Get(key)
	if err != nil || data == nil {
		return false
	}
	if version != cacheSchemaVersion {
		return false
	}
	if time.Since(time.Unix(timestamp, 0)) > p.ttl {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		contract.LogWarn("decoding cache entry", fmt.Errorf("key %s: %w", key, err))
		return false
	}
	return true
}

func (p *CachedProvider) save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		contract.LogWarn("encoding cache entry", fmt.Errorf("key %s: %w", key, err))
		return
	}
	if err := p.store.Set(key, data, cacheSchemaVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("writing cache entry", fmt.Errorf("key %s: %w", key, err))
	}
}
