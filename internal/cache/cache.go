// Package cache provides an optional redis-backed cache for the public
// portfolio payload. A nil *Cache is valid and disables caching, so
// callers never have to branch on whether redis is configured.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andriwebdev/portfolio-admin/internal/config"
)

// PortfolioKey is the cache key for the aggregated public payload.
const PortfolioKey = "portfolio:public"

// DefaultTTL applies when the config does not set one.
const DefaultTTL = 60 * time.Second

// Cache wraps a redis client with the TTL from config.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis using the cache config. Returns nil (caching
// disabled) when the cache is not enabled in config.
func New(cfg config.Cache) (*Cache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// Get returns the cached bytes for key, or nil on miss or when disabled.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if c == nil {
		return nil
	}

	out, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}

	return out
}

// Set stores value under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil {
		return
	}

	c.rdb.Set(ctx, key, value, c.ttl)
}

// Invalidate drops the cached entry for key. Admin mutation handlers call
// this so the public payload reflects the write on the next read.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}

	c.rdb.Del(ctx, key)
}

// Close releases the underlying redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}

	return c.rdb.Close()
}
