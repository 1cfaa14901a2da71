package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"taskilo_billing/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "billing:event:"

type redisClient interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisEventCache remembers processed webhook deliveries so redeliveries can
// be answered without touching the store. It is only a fast path; the store's
// event record stays authoritative.
type RedisEventCache struct {
	rdb redisClient
}

var _ interfaces.IEventCache = (*RedisEventCache)(nil)

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
}

func NewRedisEventCache(rdb redisClient) *RedisEventCache {
	return &RedisEventCache{rdb: rdb}
}

func (c *RedisEventCache) Seen(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return n > 0, nil
}

func (c *RedisEventCache) Remember(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	log.Printf("[billing][cache] remembered event_key=%s ttl=%s", key, ttl)
	return nil
}
