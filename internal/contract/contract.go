// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/altsource/altsource/schema"
)

// PartProvider defines the catalog operations the matching pipeline needs.
// This allows the core logic to be tested without a live catalog service.
type PartProvider interface {
	// GetPart returns a part with its parametric attributes by exact MPN.
	GetPart(ctx context.Context, mpn string) (schema.PartAttributes, error)

	// FindCandidates returns substitution candidates for the source part,
	// drawn from the same category. The source part itself is excluded.
	// A limit of 0 means no limit.
	FindCandidates(ctx context.Context, source *schema.PartAttributes, limit int) ([]schema.PartAttributes, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetPartStore() CacheStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}
