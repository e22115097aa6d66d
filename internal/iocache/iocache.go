// Package iocache is for caching catalog I/O across runs.
package iocache

import (
	"sync"

	"github.com/altsource/altsource/internal/contract"
)

// CacheStoreManager manages the CacheStore instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	parts        contract.CacheStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetPartStore returns the part CacheStore.
func (mgr *CacheStoreManager) GetPartStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.parts
}
