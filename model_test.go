package friday_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vk18phoenix/friday"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short text kept", "hello", "hello"},
		{"exactly thirty chars kept", strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{"long text clamped", strings.Repeat("a", 31), strings.Repeat("a", 30)},
		{"clamp counts runes not bytes", strings.Repeat("日", 40), strings.Repeat("日", 30)},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, friday.DeriveTitle(tt.text))
		})
	}
}

func TestCloneSessionsIsDeep(t *testing.T) {
	original := []friday.Session{
		{
			ID:       "1",
			Title:    "first",
			Messages: []friday.Message{{ID: "m1", Text: "hi", Sender: friday.SenderUser}},
		},
	}

	cloned := friday.CloneSessions(original)
	require.Len(t, cloned, 1)

	cloned[0].Messages[0].Text = "changed"
	cloned[0].Title = "changed"

	assert.Equal(t, "hi", original[0].Messages[0].Text)
	assert.Equal(t, "first", original[0].Title)
}

func TestNewIDIsNumeric(t *testing.T) {
	id := friday.NewID()
	require.NotEmpty(t, id)
	for _, r := range id {
		assert.True(t, r >= '0' && r <= '9', "id %q should be a decimal timestamp", id)
	}
}
