package backend

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// probeTimeout bounds the liveness ping issued at construction.
const probeTimeout = 5 * time.Second

// Redis is the remote translation-memory backend. Entries expire after
// the configured TTL; keys arrive fully namespaced from the key deriver,
// so no additional prefix is applied.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisConfig holds configuration for the Redis backend.
type RedisConfig struct {
	URL string // Connection URL (e.g., "redis://localhost:6379/0")
	TTL int    // Entry TTL in seconds (0 = no expiration)
}

// NewRedis connects to Redis and verifies liveness with a short ping.
// It returns an error on an unparseable URL or a failed probe; the
// caller decides how to degrade.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewRedisFromClient(client, cfg.TTL), nil
}

// NewRedisFromClient wraps an existing client. Used by tests to inject
// a mock connection.
func NewRedisFromClient(client *redis.Client, ttlSeconds int) *Redis {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &Redis{client: client, ttl: ttl}
}

// Get retrieves a value from Redis. A missing key is not an error.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores a value with the backend TTL.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// TTL returns the configured entry lifetime.
func (r *Redis) TTL() time.Duration {
	return r.ttl
}

// Verify Redis implements Backend
var _ Backend = (*Redis)(nil)
