// Package supabase implements the remote history client on a Supabase
// project: one chat_histories row per identity, the whole session collection
// in a jsonb column. ReplaceAll upserts the row, which keeps the write
// idempotent and the server free of merge logic.
package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"

	"github.com/Vk18phoenix/friday"
	"github.com/Vk18phoenix/friday/remote"
)

const historyTable = "chat_histories"

// Config holds Supabase connection configuration.
type Config struct {
	URL    string
	APIKey string
}

// Client implements remote.Client using Supabase.
type Client struct {
	client *supabase.Client
}

// historyRow is the wire shape of one chat_histories row.
type historyRow struct {
	UserID    string           `json:"user_id"`
	Sessions  []friday.Session `json:"sessions"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// New creates a new Supabase history client.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	client, err := supabase.NewClient(cfg.URL, cfg.APIKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Client{client: client}, nil
}

// FetchAll implements remote.Client.
func (c *Client) FetchAll(ctx context.Context, identityKey string) ([]friday.Session, error) {
	var rows []historyRow
	_, err := c.client.From(historyTable).
		Select("*", "", false).
		Eq("user_id", identityKey).
		ExecuteTo(&rows)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}

	if len(rows) == 0 || rows[0].Sessions == nil {
		return []friday.Session{}, nil
	}
	return rows[0].Sessions, nil
}

// ReplaceAll implements remote.Client.
func (c *Client) ReplaceAll(ctx context.Context, identityKey string, sessions []friday.Session) error {
	if sessions == nil {
		sessions = []friday.Session{}
	}

	row := historyRow{
		UserID:    identityKey,
		Sessions:  sessions,
		UpdatedAt: time.Now().UTC(),
	}

	_, _, err := c.client.From(historyTable).
		Insert(row, true, "user_id", "minimal", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to replace chat history: %w", err)
	}
	return nil
}

// Compile-time check that Client implements remote.Client
var _ remote.Client = (*Client)(nil)
