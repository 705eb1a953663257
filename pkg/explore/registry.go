package explore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/handover-hq/atlas/pkg/graph"
	"github.com/handover-hq/atlas/pkg/logger"
	"github.com/handover-hq/atlas/pkg/source"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"
)

// LoadState is the observable lifecycle of one session's payload fetch.
type LoadState string

const (
	LoadStateLoading LoadState = "loading"
	LoadStateError   LoadState = "error"
	LoadStateLoaded  LoadState = "loaded"
)

// Status is a snapshot of one registry entry.
type Status struct {
	SessionID string    `json:"session_id"`
	State     LoadState `json:"state"`
	Error     string    `json:"error,omitempty"`
	NodeCount int       `json:"node_count"`
	EdgeCount int       `json:"edge_count"`
}

type entry struct {
	state   LoadState
	err     string
	session *Session
	// gen identifies the most recent load started for this entry. Older
	// loads may still install their graph (last resolved wins) but only the
	// newest load's failure may park the entry in the error state.
	gen string
}

// Registry holds the exploration sessions the server currently serves, keyed
// by capture session id. It serializes all access to each Session, which
// keeps the engine's single-threaded reactive model intact behind a
// concurrent HTTP surface.
type Registry struct {
	src source.PayloadSource

	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry on top of the given payload source.
func NewRegistry(src source.PayloadSource) *Registry {
	return &Registry{
		src:     src,
		entries: make(map[string]*entry),
	}
}

// Load fetches, decodes, and normalizes the payload for one session, then
// installs a fresh Session with default exploration state. Existing
// exploration state is untouched until the new graph is in hand; a fetch
// failure keeps whatever was loaded before and records the error. Failed
// loads are not retried automatically.
func (r *Registry) Load(ctx context.Context, sessionID string) error {
	gen, err := gonanoid.New()
	if err != nil {
		return fmt.Errorf("failed to create load token: %w", err)
	}

	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{}
		r.entries[sessionID] = e
	}
	e.state = LoadStateLoading
	e.err = ""
	e.gen = gen
	r.mu.Unlock()

	payload, err := r.src.Fetch(ctx, sessionID)
	if err != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if e.gen == gen {
			e.state = LoadStateError
			e.err = err.Error()
		}
		logger.Error("Failed to load graph payload", "session_id", sessionID, "err", err)
		return fmt.Errorf("failed to load graph payload: %w", err)
	}

	raw, err := graph.Decode(payload)
	if err != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		if e.gen == gen {
			e.state = LoadStateError
			e.err = err.Error()
		}
		logger.Error("Failed to decode graph payload", "session_id", sessionID, "err", err)
		return err
	}

	g := graph.Normalize(raw)

	r.mu.Lock()
	e.state = LoadStateLoaded
	e.err = ""
	e.session = NewSession(g)
	r.mu.Unlock()

	logger.Info("Graph loaded", "session_id", sessionID, "nodes", len(g.Nodes), "edges", len(g.Edges))
	return nil
}

// Preload warms several sessions concurrently, e.g. the scripted demo
// sessions at boot. Individual failures are logged by Load; the first error
// is returned once all loads finish.
func (r *Registry) Preload(ctx context.Context, sessionIDs []string) error {
	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	for _, id := range sessionIDs {
		eg.Go(func() error {
			return r.Load(gCtx, id)
		})
	}
	return eg.Wait()
}

// Status reports the load state of one session. Unknown sessions report the
// loading state with no counts; the client treats that the same as a load in
// flight.
func (r *Registry) Status(sessionID string) Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := Status{SessionID: sessionID, State: LoadStateLoading}
	e, ok := r.entries[sessionID]
	if !ok {
		return st
	}
	st.State = e.state
	st.Error = e.err
	if e.session != nil {
		st.NodeCount = len(e.session.Graph().Nodes)
		st.EdgeCount = len(e.session.Graph().Edges)
	}
	return st
}

// ErrNotLoaded is returned by WithSession when no graph is loaded for the
// session.
var ErrNotLoaded = errors.New("session graph not loaded")

// WithSession runs fn against the session's exploration state while holding
// the registry lock. All interaction and frame computation goes through
// here, so a Session never sees concurrent calls.
func (r *Registry) WithSession(sessionID string, fn func(*Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok || e.session == nil {
		return ErrNotLoaded
	}
	return fn(e.session)
}
