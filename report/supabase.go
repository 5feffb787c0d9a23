package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

const feedbackTable = "feedback"

// feedbackRow is the wire shape of one feedback row.
type feedbackRow struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	UserKey   string    `json:"user_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupabaseReporter stores reports as rows in a feedback table.
type SupabaseReporter struct {
	client   *supabase.Client
	category string
	userKey  string
}

// NewSupabaseReporter creates a reporter writing to the project's feedback
// table under the "safety" category.
func NewSupabaseReporter(url, apiKey string) (*SupabaseReporter, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	client, err := supabase.NewClient(url, apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseReporter{client: client, category: "safety"}, nil
}

// WithUserKey tags subsequent reports with the sender's identity key.
func (r *SupabaseReporter) WithUserKey(key string) *SupabaseReporter {
	out := *r
	out.userKey = key
	return &out
}

// Report implements Reporter.
func (r *SupabaseReporter) Report(ctx context.Context, text string) error {
	row := feedbackRow{
		ID:        uuid.NewString(),
		Category:  r.category,
		Message:   text,
		UserKey:   r.userKey,
		CreatedAt: time.Now().UTC(),
	}

	_, _, err := r.client.From(feedbackTable).
		Insert(row, false, "", "minimal", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to store safety report: %w", err)
	}
	return nil
}

// Compile-time check that SupabaseReporter implements Reporter
var _ Reporter = (*SupabaseReporter)(nil)
