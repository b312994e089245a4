// Package catalog serves the public catalog data the storefront renders
// on nearly every page, fronted by redis so the backend is not hit for
// categories and trending products on each request.
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"artisanalley/web/internal/backend"
)

const (
	keyCategories = "catalog:categories"
	keyTrending   = "catalog:trending"
)

type Cache struct {
	backend *backend.Client
	redis   *redis.Client
	ttl     time.Duration
	log     zerolog.Logger
}

// NewCache wires the read-through cache. A nil redis client is valid:
// every read then goes straight to the backend.
func NewCache(backendClient *backend.Client, redisClient *redis.Client, ttl time.Duration, log zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{
		backend: backendClient,
		redis:   redisClient,
		ttl:     ttl,
		log:     log.With().Str("component", "catalog").Logger(),
	}
}

func (c *Cache) Categories(ctx context.Context) ([]backend.Category, error) {
	var categories []backend.Category
	if c.lookup(ctx, keyCategories, &categories) {
		return categories, nil
	}

	categories, err := c.backend.Categories(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, keyCategories, categories)
	return categories, nil
}

func (c *Cache) Trending(ctx context.Context) ([]backend.Product, error) {
	var products []backend.Product
	if c.lookup(ctx, keyTrending, &products) {
		return products, nil
	}

	products, err := c.backend.Trending(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, keyTrending, products)
	return products, nil
}

// RefreshTrending re-warms the trending key regardless of its age. The
// job scheduler calls this on a timer.
func (c *Cache) RefreshTrending(ctx context.Context) error {
	products, err := c.backend.Trending(ctx)
	if err != nil {
		return err
	}
	c.store(ctx, keyTrending, products)
	return nil
}

func (c *Cache) lookup(ctx context.Context, key string, out any) bool {
	if c.redis == nil {
		return false
	}
	raw, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry unreadable")
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
