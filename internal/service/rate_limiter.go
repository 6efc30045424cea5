package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prperemyshlev/transactions-api/pkg/database"
	"github.com/redis/go-redis/v9"
)

// RateLimitResult describes the outcome of a rate limit check
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// slidingWindowScript trims, counts and records in one step so concurrent
// callers cannot all observe the same count.
// KEYS[1] window key
// ARGV: now, window start, limit, member, ttl in ms (times in unix micros)
// Returns {allowed, count before this request, oldest score}
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', ARGV[2])
local count = redis.call('ZCARD', key)
if count < limit then
	redis.call('ZADD', key, ARGV[1], ARGV[4])
	redis.call('PEXPIRE', key, ARGV[5])
	return {1, count, 0}
end

local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if #oldest == 0 then
	return {0, count, 0}
end
return {0, count, tonumber(oldest[2])}
`)

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	redis *database.Redis
	now   func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(redis *database.Redis) *RateLimiter {
	return &RateLimiter{redis: redis, now: time.Now}
}

// Allow records a request for key and reports whether it fits in the sliding window
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	now := r.now()
	windowStart := now.Add(-window)

	// Sliding window log: one sorted set member per request, scored by unix micros
	redisKey := fmt.Sprintf("ratelimit:%s", key)
	member := fmt.Sprintf("%d-%s", now.UnixMicro(), uuid.NewString())
	ttl := window + time.Minute

	reply, err := slidingWindowScript.Run(ctx, r.redis.Client, []string{redisKey},
		now.UnixMicro(), windowStart.UnixMicro(), limit, member, ttl.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to apply rate limit window: %w", err)
	}
	if len(reply) != 3 {
		return nil, fmt.Errorf("unexpected rate limit reply %v", reply)
	}

	count := int(reply[1])
	if reply[0] == 0 {
		result := &RateLimitResult{Allowed: false, Limit: limit, Remaining: 0, RetryAfter: window}
		if oldest := reply[2]; oldest > 0 {
			result.RetryAfter = window - now.Sub(time.UnixMicro(oldest))
		}
		return result, nil
	}

	return &RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - count - 1,
	}, nil
}
