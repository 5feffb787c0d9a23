// Package tempchat stores the single ephemeral guest conversation: one
// message sequence, durable on the device, never visible to the server.
package tempchat

import (
	"context"

	"github.com/Vk18phoenix/friday"
)

// Store holds the temp-chat message sequence.
type Store interface {
	// Load returns the stored sequence, or an empty sequence if none exists.
	Load(ctx context.Context) ([]friday.Message, error)

	// Save replaces the stored sequence wholesale.
	Save(ctx context.Context, messages []friday.Message) error

	// Close releases any resources held by the store.
	Close() error
}
