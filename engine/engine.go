// Package engine owns the in-memory model of all chat sessions for the
// current identity and mediates every mutation through the
// optimistic-update/full-replace persistence protocol.
//
// Every operation applies to memory first and persists second: a failed write
// is surfaced to the caller but never rolled back, so the local model stays
// the source of truth until the next successful hydration. Storage switches
// underneath the model on login/logout — server-held sessions for
// authenticated identities, the device-local temp chat for guests.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Vk18phoenix/friday"
	"github.com/Vk18phoenix/friday/auth"
	"github.com/Vk18phoenix/friday/genai"
	"github.com/Vk18phoenix/friday/remote"
	"github.com/Vk18phoenix/friday/report"
	"github.com/Vk18phoenix/friday/tempchat"
)

// apologyText replaces the assistant reply when generation fails, so the
// conversation never visibly stalls.
const apologyText = "Sorry, I'm having trouble responding right now."

// tempSlot is the in-flight key for sends that target the ephemeral sequence
// (guest sends, and temp-chat sends by an authenticated user).
const tempSlot = "temp"

const reportTimeout = 10 * time.Second

// State is the engine lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateHydrating
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateHydrating:
		return "hydrating"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// backend is the identity-mode variant: each operation matches on it once
// instead of re-checking a mode flag at every call site.
type backend interface {
	isBackend()
}

// guestBackend persists the single ephemeral conversation on the device.
type guestBackend struct {
	store tempchat.Store
}

// accountBackend persists the session collection server-side.
type accountBackend struct {
	client      remote.Client
	identityKey string
}

func (guestBackend) isBackend()   {}
func (accountBackend) isBackend() {}

// Engine is the session synchronization engine. One instance per client
// process; the in-memory model is guarded by a single mutex and suspension
// points (generation, persistence) run outside it.
type Engine struct {
	authProvider auth.Provider
	remoteClient remote.Client
	tempStore    tempchat.Store
	gen          genai.Generator
	filter       *friday.PolicyFilter
	reporter     report.Reporter
	log          *slog.Logger
	newID        func() string

	mu       sync.Mutex
	state    State
	mode     backend
	epoch    uint64 // bumped on every hydration; stale completions check it
	sessions []friday.Session
	activeID string
	tempMsgs []friday.Message
	tempView bool // authenticated identity looking at the temp chat
	inFlight map[string]bool

	reports sync.WaitGroup
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithPolicyFilter replaces the default content policy filter.
func WithPolicyFilter(f *friday.PolicyFilter) Option {
	return func(e *Engine) { e.filter = f }
}

// WithIDGenerator replaces the message/session id generator.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// New assembles an engine. The reporter may be nil, in which case safety
// reports go to the structured log. Call Hydrate (or Run) before issuing
// operations.
func New(
	provider auth.Provider,
	remoteClient remote.Client,
	tempStore tempchat.Store,
	gen genai.Generator,
	reporter report.Reporter,
	opts ...Option,
) *Engine {
	e := &Engine{
		authProvider: provider,
		remoteClient: remoteClient,
		tempStore:    tempStore,
		gen:          gen,
		filter:       friday.NewPolicyFilter(),
		reporter:     reporter,
		log:          slog.Default(),
		newID:        friday.NewID,
		inFlight:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.reporter == nil {
		e.reporter = report.NewLogReporter(e.log)
	}
	return e
}

// Hydrate loads the authoritative state for the current identity, replacing
// whatever was in memory. A failed load falls back to an empty Ready model
// and returns a *friday.PersistenceError; the engine stays usable either way.
func (e *Engine) Hydrate(ctx context.Context) error {
	e.mu.Lock()
	e.state = StateHydrating
	e.epoch++
	e.inFlight = make(map[string]bool)
	e.mu.Unlock()

	identity := e.authProvider.Current()
	log := e.log.With("mode", identity.Mode)

	if identity.IsAuthenticated() {
		sessions, err := e.remoteClient.FetchAll(ctx, identity.Key)

		e.mu.Lock()
		e.mode = accountBackend{client: e.remoteClient, identityKey: identity.Key}
		e.tempMsgs = nil
		e.tempView = false
		if err != nil {
			e.sessions = nil
			e.activeID = ""
			e.state = StateReady
			e.mu.Unlock()
			log.Error("failed to fetch chat history", "error", err)
			return &friday.PersistenceError{Op: "fetch chat history", Err: err}
		}
		e.sessions = sessions
		if !sessionExists(e.sessions, e.activeID) {
			e.activeID = ""
			if len(e.sessions) > 0 {
				e.activeID = e.sessions[0].ID
			}
		}
		e.state = StateReady
		e.mu.Unlock()
		log.Info("hydrated chat history", "sessions", len(sessions))
		return nil
	}

	msgs, err := e.tempStore.Load(ctx)

	e.mu.Lock()
	e.mode = guestBackend{store: e.tempStore}
	e.sessions = nil
	e.activeID = ""
	e.tempView = false
	if err != nil {
		e.tempMsgs = nil
		e.state = StateReady
		e.mu.Unlock()
		log.Error("failed to load temp chat", "error", err)
		return &friday.PersistenceError{Op: "load temp chat", Err: err}
	}
	e.tempMsgs = msgs
	e.state = StateReady
	e.mu.Unlock()
	log.Info("hydrated temp chat", "messages", len(msgs))
	return nil
}

// Run hydrates once and then re-hydrates on every identity change until ctx
// is cancelled. Hydration failures are logged, not fatal.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Hydrate(ctx); err != nil {
		e.log.Warn("initial hydration failed", "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.authProvider.Changes():
			if err := e.Hydrate(ctx); err != nil {
				e.log.Warn("re-hydration failed", "error", err)
			}
		}
	}
}

// SendMessage validates text against the quota and policy gates, appends a
// user message (materializing a new session when nothing is active), asks the
// generation collaborator for a reply, appends it, and persists the result.
// The optimistic appends survive a failed persistence write; the returned
// *friday.PersistenceError is a notice, not a rollback.
func (e *Engine) SendMessage(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return friday.ErrEmptyMessage
	}

	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return friday.ErrNotReady
	}

	_, isAccount := e.mode.(accountBackend)

	if !isAccount && !friday.MayAcceptGuestMessage(len(e.tempMsgs)) {
		e.mu.Unlock()
		return friday.ErrQuotaExceeded
	}

	// Observed policy: only authenticated traffic is screened. Guests are
	// bounded by quota instead.
	if isAccount && !e.filter.Screen(text) {
		e.mu.Unlock()
		e.fireReport(text)
		e.log.Warn("message rejected by content policy")
		return friday.ErrPolicyViolation
	}

	userMsg := friday.Message{ID: e.newID(), Text: text, Sender: friday.SenderUser}

	var (
		targetKey string
		prior     []friday.Message
		epoch     = e.epoch
	)

	ephemeral := !isAccount || e.tempView
	if ephemeral {
		if e.inFlight[tempSlot] {
			e.mu.Unlock()
			return friday.ErrSendInFlight
		}
		prior = append([]friday.Message(nil), e.tempMsgs...)
		e.tempMsgs = append(e.tempMsgs, userMsg)
		targetKey = tempSlot
	} else {
		if e.inFlight[e.activeID] {
			e.mu.Unlock()
			return friday.ErrSendInFlight
		}
		if e.activeID == "" {
			sess := friday.Session{
				ID:       e.newID(),
				Title:    friday.DeriveTitle(text),
				Messages: []friday.Message{userMsg},
			}
			e.sessions = append([]friday.Session{sess}, e.sessions...)
			e.activeID = sess.ID
			targetKey = sess.ID
		} else {
			idx := sessionIndex(e.sessions, e.activeID)
			if idx < 0 {
				e.mu.Unlock()
				return friday.ErrSessionNotFound
			}
			prior = append([]friday.Message(nil), e.sessions[idx].Messages...)
			e.sessions[idx].Messages = append(e.sessions[idx].Messages, userMsg)
			targetKey = e.activeID
		}
	}
	e.inFlight[targetKey] = true
	mode := e.mode
	e.mu.Unlock()

	replyText, genErr := e.gen.Generate(ctx, text, prior)
	if genErr != nil {
		e.log.Error("generation failed", "error", genErr)
		replyText = apologyText
	}
	assistantMsg := friday.Message{ID: e.newID(), Text: replyText, Sender: friday.SenderAssistant}

	e.mu.Lock()
	if e.epoch != epoch {
		// Identity changed mid-send; the reply belongs to a model that no
		// longer exists.
		e.mu.Unlock()
		e.log.Info("discarding reply after identity change")
		return nil
	}
	delete(e.inFlight, targetKey)

	if ephemeral {
		e.tempMsgs = append(e.tempMsgs, assistantMsg)
		snapshot := append([]friday.Message(nil), e.tempMsgs...)
		e.mu.Unlock()

		if isAccount {
			// Authenticated temp chat is never persisted anywhere.
			return nil
		}
		gb := mode.(guestBackend)
		if err := gb.store.Save(ctx, snapshot); err != nil {
			e.log.Error("failed to save temp chat", "error", err)
			return &friday.PersistenceError{Op: "save temp chat", Err: err}
		}
		return nil
	}

	idx := sessionIndex(e.sessions, targetKey)
	if idx < 0 {
		// The target session was deleted while the send was outstanding.
		e.mu.Unlock()
		e.log.Info("discarding reply for deleted session", "session_id", targetKey)
		return nil
	}
	e.sessions[idx].Messages = append(e.sessions[idx].Messages, assistantMsg)
	snapshot := friday.CloneSessions(e.sessions)
	be := e.mode.(accountBackend)
	e.mu.Unlock()

	return e.persist(ctx, be, snapshot)
}

// NewSession clears the active pointer and the visible sequence. The
// persisted collection is untouched until the next send materializes a new
// session. For a guest it only clears the visible sequence.
func (e *Engine) NewSession() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateReady {
		return friday.ErrNotReady
	}

	switch e.mode.(type) {
	case accountBackend:
		e.activeID = ""
		e.tempView = false
	default:
		e.tempMsgs = nil
	}
	return nil
}

// SelectSession makes the given session active. An unknown id is a no-op.
func (e *Engine) SelectSession(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateReady {
		return friday.ErrNotReady
	}

	if sessionExists(e.sessions, id) {
		e.activeID = id
		e.tempView = false
	}
	return nil
}

// RenameSession overwrites the session's title and persists. A blank new
// title is silently ignored; the title is stored trimmed.
func (e *Engine) RenameSession(ctx context.Context, id, newTitle string) error {
	title := strings.TrimSpace(newTitle)
	if title == "" {
		return nil
	}

	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return friday.ErrNotReady
	}
	be, ok := e.mode.(accountBackend)
	if !ok {
		e.mu.Unlock()
		return friday.ErrSessionNotFound
	}
	idx := sessionIndex(e.sessions, id)
	if idx < 0 {
		e.mu.Unlock()
		return friday.ErrSessionNotFound
	}
	e.sessions[idx].Title = title
	snapshot := friday.CloneSessions(e.sessions)
	e.mu.Unlock()

	return e.persist(ctx, be, snapshot)
}

// TogglePin flips the session's pinned flag and persists.
func (e *Engine) TogglePin(ctx context.Context, id string) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return friday.ErrNotReady
	}
	be, ok := e.mode.(accountBackend)
	if !ok {
		e.mu.Unlock()
		return friday.ErrSessionNotFound
	}
	idx := sessionIndex(e.sessions, id)
	if idx < 0 {
		e.mu.Unlock()
		return friday.ErrSessionNotFound
	}
	e.sessions[idx].Pinned = !e.sessions[idx].Pinned
	snapshot := friday.CloneSessions(e.sessions)
	e.mu.Unlock()

	return e.persist(ctx, be, snapshot)
}

// DeleteSession removes the session and persists. Deleting the active session
// clears the active pointer and the visible sequence.
func (e *Engine) DeleteSession(ctx context.Context, id string) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return friday.ErrNotReady
	}
	be, ok := e.mode.(accountBackend)
	if !ok {
		e.mu.Unlock()
		return friday.ErrSessionNotFound
	}
	idx := sessionIndex(e.sessions, id)
	if idx < 0 {
		e.mu.Unlock()
		return friday.ErrSessionNotFound
	}
	e.sessions = append(e.sessions[:idx], e.sessions[idx+1:]...)
	if e.activeID == id {
		e.activeID = ""
	}
	snapshot := friday.CloneSessions(e.sessions)
	e.mu.Unlock()

	return e.persist(ctx, be, snapshot)
}

// DeleteAllSessions empties the collection, clears the active pointer and
// persists the empty collection.
func (e *Engine) DeleteAllSessions(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return friday.ErrNotReady
	}
	be, ok := e.mode.(accountBackend)
	if !ok {
		e.mu.Unlock()
		return nil
	}
	e.sessions = nil
	e.activeID = ""
	snapshot := []friday.Session{}
	e.mu.Unlock()

	return e.persist(ctx, be, snapshot)
}

// EnterTempChat switches an authenticated identity to the temp-chat view.
// Nothing sent there is persisted. For a guest it is a no-op: guests are
// already temp-only.
func (e *Engine) EnterTempChat(ctx context.Context) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return friday.ErrNotReady
	}
	if _, ok := e.mode.(accountBackend); !ok {
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()

	msgs, err := e.tempStore.Load(ctx)

	e.mu.Lock()
	if _, ok := e.mode.(accountBackend); ok && e.state == StateReady {
		e.tempView = true
		e.activeID = ""
		e.tempMsgs = msgs
	}
	e.mu.Unlock()

	if err != nil {
		return &friday.PersistenceError{Op: "load temp chat", Err: err}
	}
	return nil
}

// LeaveTempChat returns an authenticated identity to the regular session
// view, composing into a fresh session.
func (e *Engine) LeaveTempChat() error {
	return e.NewSession()
}

func (e *Engine) persist(ctx context.Context, be accountBackend, snapshot []friday.Session) error {
	if err := be.client.ReplaceAll(ctx, be.identityKey, snapshot); err != nil {
		e.log.Error("failed to save chat history", "error", err)
		return &friday.PersistenceError{Op: "save chat history", Err: err}
	}
	return nil
}

// fireReport delivers a safety report out-of-band. The send has already been
// rejected; delivery failure is logged and otherwise ignored.
func (e *Engine) fireReport(text string) {
	e.reports.Add(1)
	go func() {
		defer e.reports.Done()
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		if err := e.reporter.Report(ctx, text); err != nil {
			e.log.Error("failed to deliver safety report", "error", err)
		}
	}()
}

func sessionIndex(sessions []friday.Session, id string) int {
	if id == "" {
		return -1
	}
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func sessionExists(sessions []friday.Session, id string) bool {
	return sessionIndex(sessions, id) >= 0
}
