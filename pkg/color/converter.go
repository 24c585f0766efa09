package color

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize holds one full-size grid worth of encodings.
const DefaultCacheSize = 99 * 360

type convKey struct {
	c HSL
	f Format
}

// Converter encodes colors and memoizes the results.
// It is safe for concurrent use.
type Converter struct {
	cache *lru.Cache[convKey, string]
}

// NewConverter returns a converter caching up to size encodings.
// A size below one uses [DefaultCacheSize].
func NewConverter(size int) *Converter {
	if size < 1 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[convKey, string](size)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &Converter{cache: cache}
}

// Convert returns [Encode](c, f), served from cache when possible.
func (cv *Converter) Convert(c HSL, f Format) string {
	key := convKey{c: c, f: f}
	if s, ok := cv.cache.Get(key); ok {
		return s
	}
	s := Encode(c, f)
	cv.cache.Add(key, s)
	return s
}

// Len returns the number of cached encodings.
func (cv *Converter) Len() int { return cv.cache.Len() }

// Purge drops all cached encodings.
func (cv *Converter) Purge() { cv.cache.Purge() }
