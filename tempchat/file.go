package tempchat

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Vk18phoenix/friday"
)

// fileStore implements Store as a JSON file on the device. This is the
// default driver: durable across restarts of the same device profile, not
// synced anywhere.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// Load implements Store. A missing file means no temp chat yet, not an error.
func (s *fileStore) Load(ctx context.Context) ([]friday.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []friday.Message{}, nil
	}
	if err != nil {
		return nil, err
	}

	var messages []friday.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []friday.Message{}
	}
	return messages, nil
}

// Save implements Store. The file is replaced atomically via rename so a
// crash mid-write cannot leave a torn sequence behind.
func (s *fileStore) Save(ctx context.Context, messages []friday.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Close implements Store.
func (s *fileStore) Close() error {
	return nil
}
