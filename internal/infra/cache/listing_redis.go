package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ListingRedis caches rendered listings per user. Invalidate bumps a
// per-user version so every older entry becomes unreachable and expires
// on its own.
type ListingRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListingRedis(client *redis.Client, ttl time.Duration) *ListingRedis {
	return &ListingRedis{client: client, ttl: ttl}
}

func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func (c *ListingRedis) Get(ctx context.Context, userID uint, ver int64, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, entryKey(userID, ver, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("listing cache get: %w", err)
	}
	return data, true, nil
}

// Set stores data under ver, the version read before the listing was
// loaded. An entry built before an Invalidate is never reachable after it.
func (c *ListingRedis) Set(ctx context.Context, userID uint, ver int64, key string, data []byte) error {
	if err := c.client.Set(ctx, entryKey(userID, ver, key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("listing cache set: %w", err)
	}
	return nil
}

func (c *ListingRedis) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("listing cache invalidate: %w", err)
	}
	return nil
}

func (c *ListingRedis) Version(ctx context.Context, userID uint) (int64, error) {
	ver, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("listing cache version: %w", err)
	}
	return ver, nil
}

func versionKey(userID uint) string {
	return fmt.Sprintf("listing:ver:%d", userID)
}

func entryKey(userID uint, ver int64, key string) string {
	return fmt.Sprintf("listing:%d:%d:%s", userID, ver, key)
}
