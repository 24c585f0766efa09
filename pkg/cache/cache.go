// Package cache stores rendered grid artifacts.
//
// Exports are pure functions of the grid configuration and the output format,
// so a rendered SVG, PNG or JSON document can be reused until the build
// changes. Three backends implement [Cache]:
//
//   - [Disabled]: stores nothing (--no-cache)
//   - [FileCache]: one file per entry under the XDG cache directory (CLI)
//   - [RedisCache]: shared cache for several `huegrid serve` instances
//
// Keys come from a [Keyer]; wrap a cache with [Observed] to report hits and
// misses through the observability hooks.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key. A miss is reported as ok == false with a
	// nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Disabled is a Cache that stores nothing; every Get misses.
var Disabled Cache = disabled{}

type disabled struct{}

func (disabled) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (disabled) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (disabled) Delete(context.Context, string) error                     { return nil }
func (disabled) Close() error                                             { return nil }
