package friday

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the engine. None of them is fatal: the engine stays
// usable after any single failure.
var (
	// ErrNotReady is returned while the engine is hydrating; callers should
	// retry after hydration completes.
	ErrNotReady = errors.New("engine not ready, hydration in progress")

	// ErrEmptyMessage rejects empty or whitespace-only message text.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrSendInFlight rejects a send while another send for the same session
	// is still outstanding.
	ErrSendInFlight = errors.New("a send is already in flight for this session")

	// ErrQuotaExceeded rejects a guest send past the message quota. Callers
	// surface this as the paywall.
	ErrQuotaExceeded = errors.New("guest message quota exceeded")

	// ErrPolicyViolation rejects a message containing banned content. A report
	// has already been fired by the time callers see this.
	ErrPolicyViolation = errors.New("message violates safety policy")

	// ErrSessionNotFound reports an id that is not in the collection.
	ErrSessionNotFound = errors.New("session not found")
)

// PersistenceError reports a failed hydration or persistence write. The
// in-memory model is authoritative regardless: a mutation that comes back with
// a PersistenceError has been applied locally and will be re-sent wholesale on
// the next successful write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
