package engine

import (
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/Vk18phoenix/friday"
	"github.com/Vk18phoenix/friday/auth"
)

// SortedView returns the display order of the session collection: pinned
// sessions first as a stable group, then by id descending (numeric when both
// ids parse as numbers, lexicographic otherwise). The sequence is restartable
// and recomputes from the live model on every iteration, so it is never
// stale after a pin, rename or delete.
func (e *Engine) SortedView() iter.Seq[friday.Session] {
	return func(yield func(friday.Session) bool) {
		e.mu.Lock()
		sorted := friday.CloneSessions(e.sessions)
		e.mu.Unlock()

		slices.SortStableFunc(sorted, compareSessions)
		for _, s := range sorted {
			if !yield(s) {
				return
			}
		}
	}
}

func compareSessions(a, b friday.Session) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}
	return compareIDsDesc(a.ID, b.ID)
}

// compareIDsDesc orders ids newest-first. Ids are normally millisecond
// timestamps, compared numerically; anything non-numeric falls back to a
// descending string comparison so foreign ids still get a total order.
func compareIDsDesc(a, b string) int {
	an, aerr := strconv.ParseFloat(a, 64)
	bn, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		switch {
		case an > bn:
			return -1
		case an < bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(b, a)
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Mode reports which storage backend currently holds the conversation.
func (e *Engine) Mode() auth.Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.mode.(accountBackend); ok {
		return auth.ModeAuthenticated
	}
	return auth.ModeGuest
}

// ActiveID returns the active session id, or "" when composing into a fresh
// session (or when in guest/temp mode, which has no session list).
func (e *Engine) ActiveID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeID
}

// ActiveMessages returns a copy of the visible message sequence: the active
// session's messages, or the ephemeral sequence in guest/temp mode.
func (e *Engine) ActiveMessages() []friday.Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.mode.(accountBackend); ok && !e.tempView {
		if idx := sessionIndex(e.sessions, e.activeID); idx >= 0 {
			return append([]friday.Message(nil), e.sessions[idx].Messages...)
		}
		return []friday.Message{}
	}
	return append([]friday.Message(nil), e.tempMsgs...)
}

// Sending reports whether any send is outstanding.
func (e *Engine) Sending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.inFlight) > 0
}

// TempChatActive reports whether an authenticated identity is looking at the
// temp-chat view.
func (e *Engine) TempChatActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tempView
}

// GuestLocked reports whether the guest quota is exhausted, so embedders can
// disable input and point at the paywall.
func (e *Engine) GuestLocked() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.mode.(accountBackend); ok {
		return false
	}
	return !friday.MayAcceptGuestMessage(len(e.tempMsgs))
}
