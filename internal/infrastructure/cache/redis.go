package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fraudshield/internal/config"
	"fraudshield/internal/domain/models"
	"fraudshield/pkg/logger"
)

// RedisCache wraps the Redis client with typed operations
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *logger.Logger
}

// NewRedis creates a new Redis client
func NewRedis(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	log = log.WithComponent("redis")
	log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Msg("connecting to Redis")

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Info().Msg("connected to Redis successfully")

	return &RedisCache{
		client:    client,
		keyPrefix: cfg.KeyPrefix,
		logger:    log,
	}, nil
}

// Client returns the underlying Redis client
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	c.logger.Info().Msg("closing Redis connection")
	return c.client.Close()
}

// key prepends the namespace prefix to a key
func (c *RedisCache) key(k string) string {
	return c.keyPrefix + k
}

// Get retrieves a value from cache
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, c.key(key)).Result()
}

// GetJSON retrieves and unmarshals a JSON value from cache
func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

// Set stores a value in cache with optional TTL
func (c *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), value, ttl).Err()
}

// SetJSON marshals and stores a value in cache
func (c *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return c.Set(ctx, key, string(data), ttl)
}

// Delete removes a key from cache
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	prefixedKeys := make([]string, len(keys))
	for i, k := range keys {
		prefixedKeys[i] = c.key(k)
	}
	return c.client.Del(ctx, prefixedKeys...).Err()
}

// Exists checks if a key exists
func (c *RedisCache) Exists(ctx context.Context, keys ...string) (int64, error) {
	prefixedKeys := make([]string, len(keys))
	for i, k := range keys {
		prefixedKeys[i] = c.key(k)
	}
	return c.client.Exists(ctx, prefixedKeys...).Result()
}

// Expire sets a TTL on a key
func (c *RedisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, c.key(key), ttl).Err()
}

// TTL returns the remaining TTL for a key
func (c *RedisCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, c.key(key)).Result()
}

// Incr increments an integer value
func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, c.key(key)).Result()
}

// IncrBy increments an integer value by a given amount
func (c *RedisCache) IncrBy(ctx context.Context, key string, value int64) (int64, error) {
	return c.client.IncrBy(ctx, c.key(key), value).Result()
}

// SetNX sets a value only if the key does not exist (for distributed locks)
func (c *RedisCache) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, c.key(key), value, ttl).Result()
}

// Pipeline returns a Redis pipeline for batch operations
func (c *RedisCache) Pipeline() redis.Pipeliner {
	return c.client.Pipeline()
}

// Cache key constants for FraudShield
const (
	// Link verdict cache keys
	KeyLinkVerdictPrefix = "cache:link:"

	// Rate limiting keys
	KeyRateLimitPrefix = "rate_limit:"

	// Aggregate analysis counters
	KeyStatsTotal      = "stats:analyses:total"
	KeyStatsThreats    = "stats:analyses:threats"
	KeyStatsContent    = "stats:analyses:content"
	KeyStatsLink       = "stats:analyses:link"
	KeyStatsScreenshot = "stats:analyses:screenshot"
)

// CacheLinkVerdict caches a link verdict by the URL's hash
func (c *RedisCache) CacheLinkVerdict(ctx context.Context, urlHash string, verdict any, ttl time.Duration) error {
	return c.SetJSON(ctx, KeyLinkVerdictPrefix+urlHash, verdict, ttl)
}

// GetCachedLinkVerdict retrieves a cached link verdict
func (c *RedisCache) GetCachedLinkVerdict(ctx context.Context, urlHash string, dest any) error {
	return c.GetJSON(ctx, KeyLinkVerdictPrefix+urlHash, dest)
}

// BumpAnalysisCounters increments the aggregate counters for one analysis
func (c *RedisCache) BumpAnalysisCounters(ctx context.Context, typ models.AnalysisType, isThreat bool) error {
	pipe := c.Pipeline()
	pipe.Incr(ctx, c.key(KeyStatsTotal))
	if isThreat {
		pipe.Incr(ctx, c.key(KeyStatsThreats))
	}
	switch typ {
	case models.AnalysisTypeContent:
		pipe.Incr(ctx, c.key(KeyStatsContent))
	case models.AnalysisTypeLink:
		pipe.Incr(ctx, c.key(KeyStatsLink))
	case models.AnalysisTypeScreenshot:
		pipe.Incr(ctx, c.key(KeyStatsScreenshot))
	}
	_, err := pipe.Exec(ctx)
	return err
}

// GetAnalysisCounters reads the aggregate counters. Missing keys read as zero.
func (c *RedisCache) GetAnalysisCounters(ctx context.Context) (*models.ServiceStats, error) {
	keys := []string{KeyStatsTotal, KeyStatsThreats, KeyStatsContent, KeyStatsLink, KeyStatsScreenshot}
	vals := make([]int64, len(keys))
	for i, k := range keys {
		v, err := c.Get(ctx, k)
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(v, "%d", &vals[i]); err != nil {
			return nil, fmt.Errorf("corrupt counter %s: %w", k, err)
		}
	}
	return &models.ServiceStats{
		TotalAnalyses:   vals[0],
		ThreatsDetected: vals[1],
		ContentScans:    vals[2],
		LinkScans:       vals[3],
		ScreenshotScans: vals[4],
		CollectedAt:     time.Now().UTC(),
	}, nil
}

// CheckRateLimit checks and increments the rate limit counter
// Returns (allowed, remaining, resetTime, error)
func (c *RedisCache) CheckRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, time.Time, error) {
	now := time.Now()
	windowKey := fmt.Sprintf("%s%s:%d", KeyRateLimitPrefix, key, now.Unix()/int64(window.Seconds()))

	pipe := c.Pipeline()
	incr := pipe.Incr(ctx, c.key(windowKey))
	pipe.Expire(ctx, c.key(windowKey), window)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	count := incr.Val()
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	resetTime := now.Add(window)

	return count <= limit, remaining, resetTime, nil
}
