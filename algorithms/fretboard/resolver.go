package fretboard

import (
	"sync/atomic"

	"github.com/RyanBlaney/sonido-escalas/algorithms/theory"
)

// Resolver memoizes NoteWithOctaveAt behind a bounded cache
type Resolver struct {
	cache  *Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats reports resolver cache usage
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// NewResolver creates a resolver with its own cache of the given capacity
func NewResolver(capacity int) *Resolver {
	return &Resolver{cache: NewCache(capacity)}
}

// NewResolverWithCache creates a resolver backed by an existing cache
func NewResolverWithCache(cache *Cache) *Resolver {
	if cache == nil {
		cache = NewCache(DefaultCacheSize)
	}
	return &Resolver{cache: cache}
}

// NoteWithOctave returns the same value as NoteWithOctaveAt, served from the cache when possible
func (r *Resolver) NoteWithOctave(open theory.Note, stringIndex, totalStrings, fret int) theory.NoteWithOctave {
	key := CacheKey{
		Open:         theory.Note(open.Index()),
		StringIndex:  stringIndex,
		TotalStrings: totalStrings,
		Fret:         fret,
	}

	if v, ok := r.cache.Get(key); ok {
		r.hits.Add(1)
		return v
	}

	r.misses.Add(1)
	v := NoteWithOctaveAt(open, stringIndex, totalStrings, fret)
	r.cache.Put(key, v)
	return v
}

// ClearCache drops every memoized entry and resets the counters
func (r *Resolver) ClearCache() {
	r.cache.Clear()
	r.hits.Store(0)
	r.misses.Store(0)
}

// Stats returns the current cache counters
func (r *Resolver) Stats() CacheStats {
	return CacheStats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
		Size:   r.cache.Len(),
	}
}
