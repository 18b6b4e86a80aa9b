package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Generated documents are cached under docs:<name>.
const docKeyPrefix = "docs:"

// RedisCache handles caching of generated stats documents
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache connection
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
	}, nil
}

// Close closes the Redis connection
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// HealthCheck pings Redis to verify connection
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// SetDocument caches one generated document payload with TTL
func (rc *RedisCache) SetDocument(ctx context.Context, name string, payload []byte, ttl time.Duration) error {
	return rc.client.Set(ctx, docKeyPrefix+name, payload, ttl).Err()
}

// GetDocument retrieves a cached document payload by name
func (rc *RedisCache) GetDocument(ctx context.Context, name string) ([]byte, error) {
	return rc.client.Get(ctx, docKeyPrefix+name).Bytes()
}

// DeleteDocuments drops cached documents, e.g. ahead of a regeneration
func (rc *RedisCache) DeleteDocuments(ctx context.Context, names ...string) error {
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = docKeyPrefix + name
	}
	return rc.client.Del(ctx, keys...).Err()
}
