package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis wraps a go-redis client with JSON helpers. A nil *Redis is a valid
// no-op cache, so callers never have to branch on whether caching is
// configured.
type Redis struct {
	client *redis.Client
}

type Config struct {
	Addr     string
	Password string
	DB       int
}

// New returns a Redis cache, or nil when no address is configured.
func New(cfg Config) *Redis {
	if cfg.Addr == "" {
		return nil
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Ping verifies connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil {
		return nil
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// SetJSON caches a value as JSON with the provided TTL.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

// GetJSON retrieves a cached JSON value into dest, reporting whether the key
// existed.
func (r *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if r == nil {
		return false, nil
	}
	res, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(res), dest); err != nil {
		return false, fmt.Errorf("json unmarshal: %w", err)
	}
	return true, nil
}

// Delete removes a cached key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if r == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
