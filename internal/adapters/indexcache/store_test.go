package indexcache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orbis/internal/adapters/indexcache"
	"go.trai.ch/orbis/internal/core/domain"
	"go.trai.ch/orbis/internal/engine/projector"
)

func testConfig() domain.Config {
	return domain.Config{
		Width: 8, Height: 4, CubeSize: 16,
		SubWidth: 2, SubHeight: 2,
		Projection:   domain.ProjectionEquirectangular,
		CacheEnabled: true,
	}
}

func openStore(t *testing.T) *indexcache.Store {
	t.Helper()
	store, err := indexcache.NewFactory().Open(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	cfg := testConfig()

	idx, err := projector.BuildIndex(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Persist(idx))

	loaded, hit, err := store.Load(cfg)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, idx.Config, loaded.Config)
	assert.Equal(t, idx.Samples, loaded.Samples)
}

func TestStoreMiss(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	idx, hit, err := store.Load(testConfig())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, idx)
}

func TestStoreRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	cfg := testConfig()
	cfg.SubWidth = 0
	_, _, err := store.Load(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestStoreKeyIntegrity(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	base := testConfig()

	variants := []func(*domain.Config){
		func(c *domain.Config) { c.Width = 9 },
		func(c *domain.Config) { c.Height = 5 },
		func(c *domain.Config) { c.CubeSize = 17 },
		func(c *domain.Config) { c.SubWidth = 3 },
		func(c *domain.Config) { c.SubHeight = 3 },
		func(c *domain.Config) { c.Projection = domain.ProjectionMercator },
	}

	seen := map[string]bool{store.Path(base): true}
	for _, mutate := range variants {
		cfg := base
		mutate(&cfg)
		path := store.Path(cfg)
		assert.False(t, seen[path], "config variant reuses cache key %s", path)
		seen[path] = true
	}

	// A variant config never hits the base config's entry.
	idx, err := projector.BuildIndex(base)
	require.NoError(t, err)
	require.NoError(t, store.Persist(idx))

	other := base
	other.SubWidth = 3
	_, hit, err := store.Load(other)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStoreCorruptEntryIsMiss(t *testing.T) {
	t.Parallel()

	corrupt := func(t *testing.T, mutate func([]byte) []byte) {
		t.Helper()
		store := openStore(t)
		cfg := testConfig()

		idx, err := projector.BuildIndex(cfg)
		require.NoError(t, err)
		require.NoError(t, store.Persist(idx))

		path := store.Path(cfg)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, mutate(data), 0o600))

		_, hit, err := store.Load(cfg)
		require.NoError(t, err)
		assert.False(t, hit)
	}

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()
		corrupt(t, func(data []byte) []byte { return data[:len(data)/2] })
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		t.Parallel()
		corrupt(t, func(data []byte) []byte {
			data[len(data)/2] ^= 0xff
			return data
		})
	})

	t.Run("wrong magic", func(t *testing.T) {
		t.Parallel()
		corrupt(t, func(data []byte) []byte {
			data[0] = 'X'
			return data
		})
	})
}

func TestStoreRepeatedPersistIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openStore(t)
	cfg := testConfig()

	idx, err := projector.BuildIndex(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Persist(idx))

	first, err := os.ReadFile(store.Path(cfg))
	require.NoError(t, err)

	require.NoError(t, store.Persist(idx))
	second, err := os.ReadFile(store.Path(cfg))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := indexcache.NewFactory().Open(dir)
	require.NoError(t, err)

	idx, err := projector.BuildIndex(testConfig())
	require.NoError(t, err)
	require.NoError(t, store.Persist(idx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(store.Path(testConfig())), entries[0].Name())
}
