package auth

import "sync"

// Static is a Provider backed by an in-process value. Embedding applications
// that manage credentials themselves push transitions with Set; tests use it
// to script login/logout sequences.
type Static struct {
	mu      sync.Mutex
	current Identity
	changes chan Identity
}

// NewStatic returns a provider starting at the given identity.
func NewStatic(initial Identity) *Static {
	return &Static{
		current: initial,
		changes: make(chan Identity, 4),
	}
}

// NewGuest returns a provider starting in guest mode.
func NewGuest() *Static {
	return NewStatic(Identity{Mode: ModeGuest})
}

// Current implements Provider.
func (s *Static) Current() Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Changes implements Provider.
func (s *Static) Changes() <-chan Identity {
	return s.changes
}

// Set replaces the current identity and delivers a change notification. If
// the change buffer is full the notification is dropped; subscribers read the
// authoritative value through Current on the next delivery.
func (s *Static) Set(id Identity) {
	s.mu.Lock()
	s.current = id
	s.mu.Unlock()

	select {
	case s.changes <- id:
	default:
	}
}

// Login transitions to an authenticated identity.
func (s *Static) Login(key, token string) {
	s.Set(Identity{Mode: ModeAuthenticated, Key: key, Token: token})
}

// Logout transitions back to guest mode.
func (s *Static) Logout() {
	s.Set(Identity{Mode: ModeGuest})
}
