// Package cache provides result caches for gotrans.CachedClient.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ZaguanLabs/gotrans"
)

// Backends accepted by Open.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// DefaultKeyPrefix namespaces gotrans keys in shared stores.
const DefaultKeyPrefix = "gotrans:"

// Store is a result cache that owns resources.
type Store interface {
	gotrans.ResultCache
	Close() error
}

// Config selects and configures a cache backend.
type Config struct {
	Backend   string        // none, memory or redis
	TTL       time.Duration // 0 = no expiration
	RedisURL  string        // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string        // Prefix for Redis keys (default: "gotrans:")
}

// Open creates the configured backend. It returns a nil Store for BackendNone
// or an empty backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return nil, nil
	case BackendMemory:
		return NewInMemoryCache(cfg.TTL), nil
	case BackendRedis:
		c, err := NewRedisCache(ctx, RedisConfig{URL: cfg.RedisURL, TTL: cfg.TTL, KeyPrefix: cfg.KeyPrefix})
		if err != nil {
			return nil, &gotrans.CacheError{Message: "failed to connect to redis", Cause: err}
		}
		return c, nil
	default:
		return nil, &gotrans.ConfigurationError{Message: "unknown cache backend", Value: cfg.Backend}
	}
}

// Lister is implemented by stores whose contents can be enumerated for export.
type Lister interface {
	Entries(ctx context.Context) (map[string]string, error)
}

func unsupported(c gotrans.ResultCache) error {
	return fmt.Errorf("cache type %T does not support export", c)
}
