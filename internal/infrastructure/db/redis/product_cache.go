package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/saintreact/inventory-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ProductCache is a read-through cache for product lookups backed by Redis.
// Key format: product:<code>. Cache failures are logged and treated as
// misses so the store stays the source of truth.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

func (c *ProductCache) Get(ctx context.Context, code string) (*domain.Product, bool) {
	raw, err := c.client.Get(ctx, c.key(code)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("code", code).Msg("product cache read failed")
		}
		return nil, false
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("product cache entry corrupt")
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) Set(ctx context.Context, p *domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		c.log.Warn().Err(err).Str("code", p.Code).Msg("product cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(p.Code), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("code", p.Code).Msg("product cache write failed")
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, code string) {
	if err := c.client.Del(ctx, c.key(code)).Err(); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("product cache invalidation failed")
	}
}

func (c *ProductCache) key(code string) string {
	return fmt.Sprintf("product:%s", code)
}
