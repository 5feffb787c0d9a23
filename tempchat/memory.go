package tempchat

import (
	"context"
	"sync"

	"github.com/Vk18phoenix/friday"
)

// memoryStore implements Store in process memory. Used in tests and by
// embedders that do not want guest durability across restarts.
type memoryStore struct {
	mu       sync.RWMutex
	messages []friday.Message
}

// Load implements Store.
func (s *memoryStore) Load(ctx context.Context) ([]friday.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]friday.Message(nil), s.messages...), nil
}

// Save implements Store.
func (s *memoryStore) Save(ctx context.Context, messages []friday.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append([]friday.Message(nil), messages...)
	return nil
}

// Close implements Store.
func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	return nil
}
