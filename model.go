// Package friday holds the data model and policy primitives for the FRIDAY
// chat core: messages, sessions, the guest quota gate, the content policy
// filter, and conversation-history trimming.
package friday

import (
	"strconv"
	"time"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// TitleMaxLen is the maximum number of displayable characters in a session
// title. Titles derived from the first message are clamped to this length.
const TitleMaxLen = 30

// Message is a single conversation turn. Messages are immutable once created.
type Message struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Sender Sender `json:"sender"`
}

// Session is one titled conversation thread. Messages are append-only during
// a live conversation; the whole sequence is replaced on hydration.
type Session struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Messages []Message `json:"messages"`
	Pinned   bool      `json:"pinned"`
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	out := s
	out.Messages = append([]Message(nil), s.Messages...)
	return out
}

// CloneSessions deep-copies a session slice. Stores hand out clones so callers
// can never mutate persisted state through a shared backing array.
func CloneSessions(sessions []Session) []Session {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		out[i] = s.Clone()
	}
	return out
}

// NewID returns a millisecond-precision time token. It matches the id format
// already persisted by existing deployments, so it must not be changed to a
// different scheme without a data migration. Two calls within the same
// millisecond collide; see the engine for how ids are injected for tests.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// DeriveTitle produces a session title from the first user message: the first
// TitleMaxLen characters of the text.
func DeriveTitle(text string) string {
	return clamp(text, TitleMaxLen)
}

func clamp(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
