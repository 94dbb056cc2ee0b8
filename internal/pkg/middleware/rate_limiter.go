package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/spendly/internal/pkg/constants"
	"github.com/piresc/spendly/internal/pkg/logger"
	"github.com/piresc/spendly/internal/utils"
	"golang.org/x/time/rate"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed window rate limiter backed by Redis.
// Requests are keyed by user id when authenticated, by client IP otherwise.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get(ContextUserID); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := incrementWindow(ctx, config.RedisClient, key, config.Period)
			if err != nil {
				logger.Error("Rate limiter unavailable",
					logger.String("key", key),
					logger.ErrorField(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil || ttl < 0 {
					ttl = config.Period
				}
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c)
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// incrementWindow bumps the counter for key and starts its window on first use
func incrementWindow(ctx context.Context, client *redis.Client, key string, period time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, period).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitIP,
		Limit:       limit,
		Period:      period,
	})
}

// UserRateLimiter creates a user-based rate limiter
func UserRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         constants.KeyRateLimitUser,
		Limit:       limit,
		Period:      period,
	})
}

// LocalRateLimiter is an in-process token bucket per client, used when Redis
// is not configured. Clients are keyed by user id when authenticated, by IP
// otherwise. Buckets idle for longer than the period are evicted.
type LocalRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*localEntry
	limit    rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
}

type localEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLocalRateLimiter allows limit requests per period for each client
func NewLocalRateLimiter(limit int, period time.Duration) *LocalRateLimiter {
	if limit <= 0 {
		limit = 1
	}
	return &LocalRateLimiter{
		limiters: make(map[string]*localEntry),
		limit:    rate.Every(period / time.Duration(limit)),
		burst:    limit,
		idle:     period,
		now:      time.Now,
	}
}

func (l *LocalRateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[key]
	if !ok {
		l.sweep(now)
		entry = &localEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops buckets not touched within the idle window. An idle bucket has
// refilled to its burst, so dropping it loses no state. Caller holds mu.
func (l *LocalRateLimiter) sweep(now time.Time) {
	for key, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > l.idle {
			delete(l.limiters, key)
		}
	}
}

// Len returns the number of tracked clients
func (l *LocalRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware returns the echo middleware enforcing the limiter
func (l *LocalRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			if userID := c.Get(ContextUserID); userID != nil {
				key = fmt.Sprintf("user:%v", userID)
			}
			if !l.limiterFor(key).Allow() {
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(l.burst))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				return utils.TooManyRequestsResponse(c)
			}
			return next(c)
		}
	}
}
