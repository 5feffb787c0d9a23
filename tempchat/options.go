package tempchat

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// StoreOption is a functional option for configuring a temp-chat store.
type StoreOption func(*storeConfig)

// storeConfig holds configuration for temp-chat stores.
type storeConfig struct {
	redisClient *redis.Client
	redisTTL    time.Duration
	deviceKey   string
	path        string
}

// WithRedisClient sets the Redis client for the Redis store.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithRedisTTL sets the TTL for Redis keys.
func WithRedisTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.redisTTL = ttl
	}
}

// WithDeviceKey scopes the Redis key to a device identifier, so two devices
// sharing one Redis do not overwrite each other's temp chat.
func WithDeviceKey(key string) StoreOption {
	return func(c *storeConfig) {
		c.deviceKey = key
	}
}

// WithPath sets the file path for the file store.
func WithPath(path string) StoreOption {
	return func(c *storeConfig) {
		c.path = path
	}
}
