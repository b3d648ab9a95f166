// Package cache provides byte caches for rendered artifacts.
//
// Rendering a navigation graph through Graphviz or rasterising a wireframe
// is far slower than laying out a menu, so pipeline results are cached by
// content hash. Three backends implement [Cache]:
//
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: shared entries for several server instances
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer] so that callers agree on their layout:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.Hash(layoutJSON), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values with an optional TTL.
type Cache interface {
	// Get returns the value for key. The bool reports a hit; a miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry kind.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
