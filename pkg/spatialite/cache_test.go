package spatialite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCacheGetCachesOnMiss(t *testing.T) {
	cache := NewDecodeCache(0)
	calls := 0

	decode := func() (*Geometry, error) {
		calls++
		return testPoint(1, 2), nil
	}

	first, err := cache.Get(1, decode)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := cache.Get(1, decode)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, calls)
}

func TestDecodeCacheGetPropagatesDecodeError(t *testing.T) {
	cache := NewDecodeCache(0)
	boom := errors.New("boom")

	_, err := cache.Get(1, func() (*Geometry, error) { return nil, boom })
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}

func TestDecodeCacheEvictsLeastRecentlyUsed(t *testing.T) {
	geom := testPoint(1, 1)
	entrySize := estimateGeometryMemory(geom)
	cache := NewDecodeCache(entrySize + entrySize/2)

	require.NoError(t, cache.Add(1, geom))
	require.NoError(t, cache.Add(2, testPoint(2, 2)))

	require.Equal(t, 1, cache.Stats().EntryCount)

	_, ok := cache.entries[2]
	require.True(t, ok)
	_, ok = cache.entries[1]
	require.False(t, ok)
}

func TestDecodeCacheAddRejectsOversizedEntry(t *testing.T) {
	cache := NewDecodeCache(1)
	err := cache.Add(1, testPoint(1, 1))
	require.Error(t, err)
}

func TestDecodeCacheRemoveAndClear(t *testing.T) {
	cache := NewDecodeCache(0)
	require.NoError(t, cache.Add(1, testPoint(1, 1)))
	require.NoError(t, cache.Add(2, testPoint(2, 2)))

	cache.Remove(1)
	require.Equal(t, 1, cache.Stats().EntryCount)

	cache.Clear()
	require.Equal(t, 0, cache.Stats().EntryCount)
}
