package remote

import (
	"context"
	"sync"

	"github.com/Vk18phoenix/friday"
)

// MemoryClient implements Client in process memory. It backs tests and
// embeddings that run without a server; it honors the same round-trip law as
// the real backend: ReplaceAll followed by FetchAll yields an equal
// collection.
type MemoryClient struct {
	mu        sync.RWMutex
	histories map[string][]friday.Session
}

// NewMemoryClient returns an empty in-memory history client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		histories: make(map[string][]friday.Session),
	}
}

// FetchAll implements Client.
func (c *MemoryClient) FetchAll(ctx context.Context, identityKey string) ([]friday.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stored, ok := c.histories[identityKey]
	if !ok {
		return []friday.Session{}, nil
	}
	return friday.CloneSessions(stored), nil
}

// ReplaceAll implements Client.
func (c *MemoryClient) ReplaceAll(ctx context.Context, identityKey string, sessions []friday.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.histories[identityKey] = friday.CloneSessions(sessions)
	return nil
}

// Compile-time check that MemoryClient implements Client
var _ Client = (*MemoryClient)(nil)
