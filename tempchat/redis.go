package tempchat

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vk18phoenix/friday"
)

// redisStore implements Store on Redis. Writes are full-replace and
// last-write-wins; only one foreground client is expected to be guest-active
// for a given device key at a time.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	key    string
}

// Load implements Store.
func (s *redisStore) Load(ctx context.Context) ([]friday.Message, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return []friday.Message{}, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []friday.Message
	if err := json.Unmarshal([]byte(val), &messages); err != nil {
		return nil, err
	}

	// Refresh TTL on read
	_ = s.client.Expire(ctx, s.key, s.ttl).Err()

	if messages == nil {
		messages = []friday.Message{}
	}
	return messages, nil
}

// Save implements Store.
func (s *redisStore) Save(ctx context.Context, messages []friday.Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, string(raw), s.ttl).Err()
}

// Close implements Store.
func (s *redisStore) Close() error {
	return s.client.Close()
}
