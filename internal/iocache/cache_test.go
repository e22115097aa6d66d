package iocache

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altsource/altsource/schema"
)

func newSQLiteStore(t *testing.T) *CacheStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := NewCacheStore(partTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*CacheStoreImpl)
}

func TestCacheStoreRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)

	ts := time.Now().Unix()
	require.NoError(t, store.Set("part:BSS138", []byte(`{"mpn":"BSS138"}`), 1, ts))

	value, version, gotTs, err := store.Get("part:BSS138")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"mpn":"BSS138"}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, ts, gotTs)
}

func TestCacheStoreOverwrite(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Set("key", []byte("old"), 1, 100))
	require.NoError(t, store.Set("key", []byte("new"), 2, 200))

	value, version, ts, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), value)
	assert.Equal(t, 2, version)
	assert.Equal(t, int64(200), ts)
}

func TestCacheStoreMiss(t *testing.T) {
	store := newSQLiteStore(t)

	_, _, _, err := store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCacheStoreStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalEntries)

	older := time.Now().Add(-time.Hour).Unix()
	newer := time.Now().Unix()
	require.NoError(t, store.Set("a", []byte("1"), 1, older))
	require.NoError(t, store.Set("b", []byte("2"), 1, newer))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.TotalEntries)
	assert.Equal(t, time.Unix(older, 0), status.OldestEntryTime)
	assert.Equal(t, time.Unix(newer, 0), status.LastEntryTime)
	assert.Positive(t, status.TableSizeBytes)
}

func TestCacheStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	store, err := NewCacheStore(partTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", []byte("value"), 1, 100))
	require.NoError(t, store.Close())

	// Re-running migrations on an existing database is a no-op.
	store, err = NewCacheStore(partTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	value, _, _, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func TestNoneBackendIsNoOp(t *testing.T) {
	store, err := NewCacheStore(partTable, schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("key", []byte("value"), 1, 100))

	_, _, _, err = store.Get("key")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{name: "simple", table: "part_cache", wantErr: false},
		{name: "underscore prefix", table: "_cache", wantErr: false},
		{name: "digit prefix", table: "1cache", wantErr: true},
		{name: "injection", table: "cache; DROP TABLE x", wantErr: true},
		{name: "empty", table: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	store, err := NewCacheStore(partTable, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", []byte("value"), 1, 100))
	require.NoError(t, store.Close())

	require.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Clearing an already-missing file is not an error.
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))
}

func TestMigrateCacheDownAndUp(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cache.db")

	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, 0))
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, -1))
}

func TestMockCacheManager(t *testing.T) {
	mockStore := &MockCacheStore{}
	mockStore.On("Get", "key").Return([]byte("value"), 1, int64(100), nil)

	mockMgr := &MockCacheManager{}
	mockMgr.On("GetPartStore").Return(mockStore)

	store := mockMgr.GetPartStore()
	value, version, ts, err := store.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, int64(100), ts)

	mockStore.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
}
