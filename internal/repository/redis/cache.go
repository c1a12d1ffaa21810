package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache is a read-through JSON cache. Concurrent misses on the same key are
// collapsed to a single loader call per instance via singleflight; instances
// still race each other, which is fine for TTL-bounded data.
type Cache struct {
	rdb *redis.Client
	sf  singleflight.Group
}

func New(client *redis.Client) *Cache {
	return &Cache{rdb: client}
}

func (c *Cache) del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return c.rdb.Del(ctx, keys...).Err()
}

func getJSON[T any](ctx context.Context, c *Cache, key string) (T, bool, error) {
	var out T

	s, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return out, false, nil
	}
	if err != nil {
		return out, false, err
	}

	if err := json.Unmarshal([]byte(s), &out); err != nil {
		var zero T
		return zero, false, err
	}

	return out, true, nil
}

func setJSON(ctx context.Context, c *Cache, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, string(b), ttl).Err()
}

// GetOrSetJSON returns the cached value for key, loading and storing it on a
// miss. The loader runs once per key per instance no matter how many requests
// miss at the same time; a failed store is ignored since the value itself is
// still good.
func GetOrSetJSON[T any](
	ctx context.Context,
	c *Cache,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	if v, ok, err := getJSON[T](ctx, c, key); err != nil || ok {
		return v, err
	}

	got, err, _ := c.sf.Do(key, func() (any, error) {
		// Whoever lost the singleflight race may find the winner's value
		// already stored.
		if v, ok, err := getJSON[T](ctx, c, key); err != nil || ok {
			return v, err
		}

		fresh, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		_ = setJSON(ctx, c, key, fresh, ttl)
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	v, ok := got.(T)
	if !ok {
		var zero T
		return zero, errors.New("unexpected cached value type")
	}

	return v, nil
}

// InvalidateFlight drops the flight's cached detail along with the flight
// list, since tickets_available on the list goes stale with every booking.
func (c *Cache) InvalidateFlight(ctx context.Context, flightID int64) error {
	return c.del(
		ctx,
		KeyFlightDetail(flightID),
		KeyFlightList(),
	)
}

func (c *Cache) InvalidateCollection(ctx context.Context, name string) error {
	return c.del(ctx, KeyCollection(name))
}
