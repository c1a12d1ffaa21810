package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// luaSlidingWindow throttles on a sorted set whose scores are hit times in
// milliseconds. Hits older than the window fall off, the current hit is
// recorded, and when the cap is exceeded the reply carries how long until
// the oldest hit ages out.
//
// KEYS[1] = hit set
// ARGV[1] = now_ms, ARGV[2] = window_ms, ARGV[3] = cap, ARGV[4] = member
const luaSlidingWindow = `
local now = tonumber(ARGV[1])
local span = tonumber(ARGV[2])
local cap = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, now - span)
redis.call('ZADD', KEYS[1], 'NX', now, ARGV[4])
redis.call('PEXPIRE', KEYS[1], span)

local hits = redis.call('ZCARD', KEYS[1])
if hits <= cap then
  return {1, hits, 0}
end

local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local oldestAt = tonumber(oldest[2]) or (now - span)
local wait = span - (now - oldestAt)
if wait < 0 then wait = 0 end
return {0, hits, wait}
`

// SlidingWindowLimiter throttles order placement per caller. The sorted sets
// live in redis, so the cap holds across every running instance.
type SlidingWindowLimiter struct {
	rdb    *redis.Client
	scope  string
	limit  int
	window time.Duration
	script *redis.Script
}

func NewSlidingWindowLimiter(
	rdb *redis.Client,
	scope string,
	limit int,
	window time.Duration,
) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		rdb:    rdb,
		scope:  scope,
		limit:  limit,
		window: window,
		script: redis.NewScript(luaSlidingWindow),
	}
}

// Allow records a hit for id and reports whether it fits the window. When it
// does not, retryAfter says how long until a slot frees up.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, id string) (allowed bool, current int64, retryAfter time.Duration, err error) {
	res, err := l.script.Run(
		ctx,
		l.rdb,
		[]string{KeyRateLimit(l.scope, id)},
		time.Now().UnixMilli(), l.window.Milliseconds(), l.limit, uuid.NewString(),
	).Result()
	if err != nil {
		return false, 0, 0, err
	}

	arr, ok := res.([]any)
	if !ok || len(arr) != 3 {
		return false, 0, 0, fmt.Errorf("bad script result: %v", res)
	}

	return replyInt(arr[0]) == 1, replyInt(arr[1]), time.Duration(replyInt(arr[2])) * time.Millisecond, nil
}

// replyInt normalizes the numeric shapes a Lua reply can take.
func replyInt(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)
		return n
	default:
		return 0
	}
}
