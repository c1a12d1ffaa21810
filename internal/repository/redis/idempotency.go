package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const idemNS = ns + ":idem"

// A key holds one flat string: lockMark while the first request is still in
// flight, resultMark plus the response body once it finished. SetNX hands the
// lock to exactly one request; replays read the stored body back.
const (
	lockMark   = "LOCK"
	resultMark = "RES:"
)

// KeyIdemOrder scopes the idempotency record to the requesting user, so two
// users sending the same Idempotency-Key never collide.
func KeyIdemOrder(userID, idemKey string) string {
	return fmt.Sprintf("%s:orders:%s:%s", idemNS, userID, idemKey)
}

// IdempotencyStore keeps finished order responses around for ttl so a retried
// request gets the original outcome instead of a second order.
type IdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// AcquireLock claims the key for the calling request. A false return means
// another request with the same key is in flight or already finished.
func (s *IdempotencyStore) AcquireLock(ctx context.Context, key string, lockTTL time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, lockMark, lockTTL).Result()
}

// SaveResult replaces the lock with the response body and extends the key to
// the store's retention TTL.
func (s *IdempotencyStore) SaveResult(ctx context.Context, key string, jsonPayload string) error {
	return s.rdb.Set(ctx, key, resultMark+jsonPayload, s.ttl).Err()
}

// GetResult returns the stored response body, if the request has one. A key
// that is absent or still locked reports ok == false.
func (s *IdempotencyStore) GetResult(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if body, found := strings.CutPrefix(v, resultMark); found {
		return body, true, nil
	}

	return "", false, nil
}

// Release drops the key so a later retry can run fresh. Used when the guarded
// request fails before producing a result worth replaying.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
