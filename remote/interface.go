// Package remote defines the server-side chat history client. The protocol is
// deliberately minimal: a full-collection fetch and an idempotent
// full-collection replace, nothing else. There is no patch or append
// operation — every persisted change re-sends the whole history, and the last
// accepted write wins. Do not "improve" this into per-session endpoints; the
// consistency and idempotence properties of the engine depend on it.
package remote

import (
	"context"

	"github.com/Vk18phoenix/friday"
)

// Client is the sole interface to server-held chat sessions for one identity.
type Client interface {
	// FetchAll returns every session stored for the identity, in stored
	// order. An identity with no history yields an empty slice.
	FetchAll(ctx context.Context, identityKey string) ([]friday.Session, error)

	// ReplaceAll overwrites the identity's entire stored history with
	// sessions. Replacing with the same value twice is a no-op.
	ReplaceAll(ctx context.Context, identityKey string, sessions []friday.Session) error
}
