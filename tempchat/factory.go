package tempchat

import (
	"errors"
	"time"
)

// StoreType represents the type of temp-chat store.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeFile   StoreType = "file"
	StoreTypeRedis  StoreType = "redis"
)

// Configuration errors returned by NewStore.
var (
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidStoreType = errors.New("invalid store type")
)

// NewStore creates a new temp-chat Store of the given type.
// Supports "memory", "file" and "redis" driver types.
// The file store requires WithPath; the Redis store requires WithRedisClient.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	config := &storeConfig{}

	for _, opt := range opts {
		opt(config)
	}

	switch storeType {
	case StoreTypeMemory:
		return &memoryStore{}, nil

	case StoreTypeFile:
		if config.path == "" {
			return nil, ErrInvalidConfig
		}
		return &fileStore{path: config.path}, nil

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		ttl := config.redisTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		key := "tempchat"
		if config.deviceKey != "" {
			key = "tempchat:" + config.deviceKey
		}
		return &redisStore{
			client: config.redisClient,
			ttl:    ttl,
			key:    key,
		}, nil

	default:
		return nil, ErrInvalidStoreType
	}
}
