package fretboard

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

// DefaultCacheSize bounds the number of memoized fret lookups
const DefaultCacheSize = 1000

// CacheKey identifies one fret lookup
type CacheKey struct {
	Open         theory.Note
	StringIndex  int
	TotalStrings int
	Fret         int
}

// Cache is a fixed-capacity map that evicts the oldest entry first.
// Reads go through Peek so they never refresh an entry; only writes order it.
// It is safe for concurrent use.
type Cache struct {
	entries  *lru.Cache[CacheKey, theory.NoteWithOctave]
	capacity int
}

// NewCache creates a cache holding at most capacity entries.
// A non-positive capacity selects DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	entries, _ := lru.New[CacheKey, theory.NoteWithOctave](capacity)
	return &Cache{entries: entries, capacity: capacity}
}

// Get returns the cached value for key without changing eviction order
func (c *Cache) Get(key CacheKey) (theory.NoteWithOctave, bool) {
	return c.entries.Peek(key)
}

// Put stores value under key, evicting the oldest entry when full.
// Rewriting an existing key moves it to the back of the eviction order.
func (c *Cache) Put(key CacheKey, value theory.NoteWithOctave) {
	c.entries.Add(key, value)
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of entries
func (c *Cache) Capacity() int {
	return c.capacity
}

// Clear removes every entry
func (c *Cache) Clear() {
	c.entries.Purge()
}
