package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/metrics"
)

// RateLimits are requests per minute per client, keyed by HTTP method.
// Methods without an entry are not limited.
type RateLimits map[string]int

// tokenBucket refills a bucket of capacity tokens at one token per interval
// and takes one token per call. Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])
if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + intervals)
	last_refill = last_refill + intervals * interval_ms
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)
return {allowed, tokens, retry_after_ms}
`)

// RateLimit limits each client IP per HTTP method with a token bucket kept in
// Redis, so limits hold across replicas. When Redis cannot be reached the
// request is let through.
func RateLimit(rdb redis.Scripter, limits RateLimits) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		limit, ok := limits[method]
		if rdb == nil || !ok || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rl:%s:%s", method, c.ClientIP())
		allowed, remaining, retryAfter, err := take(c.Request.Context(), rdb, key, limit, time.Now())
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn("Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(method).Inc()
			secs := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"code":        "RATE_LIMITED",
				"retry_after": secs,
			})
			return
		}
		c.Next()
	}
}

func take(ctx context.Context, rdb redis.Scripter, key string, perMinute int, now time.Time) (bool, int64, time.Duration, error) {
	interval := time.Minute / time.Duration(perMinute)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	ttl := int64(2 * time.Minute / time.Second)

	vals, err := tokenBucket.Run(ctx, rdb, []string{key},
		now.UnixMilli(), perMinute, interval.Milliseconds(), ttl).Int64Slice()
	if err != nil {
		return false, 0, 0, err
	}
	if len(vals) != 3 {
		return false, 0, 0, fmt.Errorf("unexpected limiter result %v", vals)
	}
	return vals[0] == 1, vals[1], time.Duration(vals[2]) * time.Millisecond, nil
}
