// Package cache stores rendered diagram artifacts.
//
// Converting a diagram to PDF shells out to rsvg-convert and rasterizing a
// PNG at print resolution takes noticeable time, while the inputs rarely
// change between runs. Artifacts are keyed by the hash of the SVG they were
// produced from plus their output options, so any change to the layout or
// the drawing yields a new key.
//
// Two implementations are provided: [FileCache] for the CLI and [NullCache]
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long an artifact stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key-value cache.
type Cache interface {
	// Get returns the cached data and true on a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key if present.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts holds the output options that affect an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	DPI    float64 `json:"dpi,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for an artifact rendered from the SVG with
	// the given hash.
	ArtifactKey(svgHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer derives keys by hashing their components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(svgHash string, opts ArtifactKeyOpts) string {
	return artifactKey(svgHash, opts)
}

// Fetch returns the cached artifact for key, or calls produce and caches its
// result. The bool reports a cache hit. Cache read and write failures are
// not fatal; produce still runs and its result is returned.
func Fetch(ctx context.Context, c Cache, key string, ttl time.Duration, produce func() ([]byte, error)) ([]byte, bool, error) {
	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}
	data, err := produce()
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}
