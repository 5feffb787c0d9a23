// Package auth defines the session-identity port consumed by the engine.
// Credential issuance and verification live outside this module; the engine
// only needs to know who it is acting as and when that changes.
package auth

// Mode is the two-state identity flag.
type Mode string

const (
	ModeGuest         Mode = "guest"
	ModeAuthenticated Mode = "authenticated"
)

// Identity describes the current actor. Key is an opaque token usable to key
// per-identity collections (a user id); Token is the bearer credential for
// authenticated requests. Both are empty in guest mode.
type Identity struct {
	Mode  Mode
	Key   string
	Token string
}

// IsAuthenticated reports whether the identity is a logged-in user.
func (id Identity) IsAuthenticated() bool {
	return id.Mode == ModeAuthenticated
}

// Provider exposes the current identity and delivers a notification on every
// login and logout. The engine re-hydrates on each delivered Identity.
type Provider interface {
	// Current returns the identity as of now.
	Current() Identity

	// Changes returns the channel on which login/logout transitions are
	// delivered. The channel is never closed by the provider.
	Changes() <-chan Identity
}
