package spatialite

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// DecodeCache holds decoded Geometry values keyed by a caller-supplied id
// (typically a SQLite rowid), with LRU eviction once a memory budget is
// exceeded.
//
// Decoding a BLOB is cheap but not free, and the same row is often read
// many times within one query (an R-tree prefilter followed by an exact
// test, a join revisiting the same feature). DecodeCache lets a caller
// avoid re-running Reader.Read for rows it already decoded. Grounded on
// pkg/v1/cache.go's ChartCache, which does the same thing for parsed
// charts instead of decoded geometries.
//
// Example:
//
//	cache := spatialite.NewDecodeCache(64 * 1024 * 1024) // 64MB
//	geom, err := cache.Get(rowID, func() (*Geometry, error) {
//	    return reader.Read(blob)
//	})
type DecodeCache struct {
	maxMemory  int64
	usedMemory int64
	entries    map[int64]*cacheEntry
	lru        *list.List
	mu         sync.RWMutex
}

type cacheEntry struct {
	id           int64
	geom         *Geometry
	memorySize   int64
	element      *list.Element
	lastAccessed time.Time
	accessCount  int
}

// NewDecodeCache creates a cache with the given memory limit in bytes. A
// limit of 0 means unlimited.
func NewDecodeCache(maxMemoryBytes int64) *DecodeCache {
	return &DecodeCache{
		maxMemory: maxMemoryBytes,
		entries:   make(map[int64]*cacheEntry),
		lru:       list.New(),
	}
}

// Get returns the geometry cached under id, calling decode on a miss and
// caching the result. decode is only invoked on a miss.
func (c *DecodeCache) Get(id int64, decode func() (*Geometry, error)) (*Geometry, error) {
	c.mu.RLock()
	if entry, ok := c.entries[id]; ok {
		c.mu.RUnlock()

		c.mu.Lock()
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		c.mu.Unlock()

		return entry.geom, nil
	}
	c.mu.RUnlock()

	geom, err := decode()
	if err != nil {
		return nil, fmt.Errorf("spatialite: decode for cache: %w", err)
	}

	if err := c.Add(id, geom); err != nil {
		return geom, nil
	}

	return geom, nil
}

// Add inserts geom under id, evicting least-recently-used entries if
// necessary. Returns an error if geom alone exceeds the cache's memory
// limit.
func (c *DecodeCache) Add(id int64, geom *Geometry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[id]; ok {
		entry.geom = geom
		entry.lastAccessed = time.Now()
		entry.accessCount++
		c.lru.MoveToFront(entry.element)
		return nil
	}

	memSize := estimateGeometryMemory(geom)

	if c.maxMemory > 0 && memSize > c.maxMemory {
		return fmt.Errorf("spatialite: geometry too large for cache (%d bytes > %d bytes max)",
			memSize, c.maxMemory)
	}

	if c.maxMemory > 0 {
		for c.usedMemory+memSize > c.maxMemory && c.lru.Len() > 0 {
			c.evictLRU()
		}
	}

	entry := &cacheEntry{
		id:           id,
		geom:         geom,
		memorySize:   memSize,
		lastAccessed: time.Now(),
		accessCount:  1,
	}
	entry.element = c.lru.PushFront(entry)
	c.entries[id] = entry
	c.usedMemory += memSize

	return nil
}

// evictLRU removes the least recently used entry. Must be called with
// c.mu held.
func (c *DecodeCache) evictLRU() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}

	entry := elem.Value.(*cacheEntry)
	c.lru.Remove(elem)
	delete(c.entries, entry.id)
	c.usedMemory -= entry.memorySize
}

// Remove explicitly evicts id from the cache, if present.
func (c *DecodeCache) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[id]; ok {
		c.lru.Remove(entry.element)
		delete(c.entries, id)
		c.usedMemory -= entry.memorySize
	}
}

// Clear empties the cache.
func (c *DecodeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int64]*cacheEntry)
	c.lru.Init()
	c.usedMemory = 0
}

// Stats reports the cache's current occupancy and access counts.
func (c *DecodeCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	totalAccess := 0
	for _, entry := range c.entries {
		totalAccess += entry.accessCount
	}

	return CacheStats{
		EntryCount:  len(c.entries),
		UsedMemory:  c.usedMemory,
		MaxMemory:   c.maxMemory,
		TotalAccess: totalAccess,
	}
}

// CacheStats holds cache occupancy metrics.
type CacheStats struct {
	EntryCount  int
	UsedMemory  int64
	MaxMemory   int64
	TotalAccess int
}

// estimateGeometryMemory approximates geom's in-memory footprint: a fixed
// per-node overhead plus 16 bytes per X/Y pair and 8 bytes per Z or M
// ordinate actually present, summed recursively over Children and Rings.
func estimateGeometryMemory(geom *Geometry) int64 {
	if geom == nil {
		return 0
	}

	sequenceSize := func(seq *CoordinateSequence) int64 {
		if seq == nil {
			return 0
		}
		size := int64(seq.Len()) * 16
		if seq.HasZ() {
			size += int64(seq.Len()) * 8
		}
		if seq.HasM() {
			size += int64(seq.Len()) * 8
		}
		return size
	}

	var walk func(g *Geometry) int64
	walk = func(g *Geometry) int64 {
		size := int64(64)
		size += sequenceSize(g.Sequence)
		for ri := range g.Rings {
			size += sequenceSize(&g.Rings[ri])
		}
		for ci := range g.Children {
			size += walk(&g.Children[ci])
		}
		return size
	}

	return walk(geom)
}
