package cache

import (
	"context"
	"time"
)

// NullCache backs render --no-cache. Every lookup misses and stored
// artifacts are discarded, so each PNG or PDF is rendered afresh.
type NullCache struct{}

// NewNullCache returns a cache that keeps nothing.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (NullCache) Delete(ctx context.Context, key string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
