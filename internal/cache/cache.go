package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/HuongNguyenDev/beautycare-admin/internal/config"
	"github.com/go-redis/redis/v8"
)

// Cache is a thin read-side cache. Every method degrades to a miss on
// Redis failure so callers never depend on it for correctness. A nil
// *Cache always misses.
type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unavailable at %s, caching disabled: %v", cfg.RedisAddr, err)
	}

	return &Cache{rdb: rdb}
}

func (c *Cache) GetJSON(ctx context.Context, key string, out any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set %s failed: %v", key, err)
	}
}
