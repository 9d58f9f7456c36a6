package screen

import (
	"context"
	"errors"
	"sync"

	"biblia/internal/domain"
	"biblia/internal/validate"
)

// State is the lifecycle position of a screen.
type State int

const (
	Idle State = iota
	Loading
	Resolved
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("screen closed")

// Snapshot is a copy of a screen's state. Result is set only when Resolved
// and Err only when Failed.
type Snapshot struct {
	State  State
	Input  domain.Input
	Result domain.Result
	Err    error
}

// Options configure a Screen.
type Options struct {
	// DefaultBook replaces an empty Input.Book.
	DefaultBook domain.BookID
	// OnChange, if set, observes every state transition. It runs outside the
	// screen's lock and must not block for long.
	OnChange func(Snapshot)
}

// Screen runs lookups of one kind.
type Screen struct {
	kind   domain.Kind
	client domain.BibleClient
	opts   Options

	mu     sync.Mutex
	snap   Snapshot
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

// New returns an Idle screen for kind.
func New(kind domain.Kind, client domain.BibleClient, opts Options) *Screen {
	return &Screen{kind: kind, client: client, opts: opts}
}

// Kind returns the lookup kind served by the screen.
func (s *Screen) Kind() domain.Kind { return s.kind }

// Submit validates in and, if valid, starts a lookup in the background,
// cancelling any lookup still in flight. Validation errors are returned
// without touching state. ctx bounds the lookup, not just the call.
func (s *Screen) Submit(ctx context.Context, in domain.Input) error {
	if in.Book == "" {
		in.Book = s.opts.DefaultBook
	}
	q, err := validate.Input(s.kind, in)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	rctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.snap = Snapshot{State: Loading, Input: q.Input}
	snap := s.snap
	s.mu.Unlock()

	s.notify(snap)
	go s.run(rctx, cancel, gen, q, done)
	return nil
}

func (s *Screen) run(ctx context.Context, cancel context.CancelFunc, gen uint64, q domain.Query, done chan struct{}) {
	defer close(done)
	defer cancel()

	res, err := s.client.Lookup(ctx, q)

	s.mu.Lock()
	if gen != s.gen || s.closed {
		// superseded or dismissed
		s.mu.Unlock()
		return
	}
	s.cancel = nil
	if err != nil {
		s.snap = Snapshot{State: Failed, Input: s.snap.Input, Err: err}
	} else {
		s.snap = Snapshot{State: Resolved, Input: s.snap.Input, Result: res}
	}
	snap := s.snap
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns the current state.
func (s *Screen) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Wait blocks until the screen leaves Loading or ctx is done.
func (s *Screen) Wait(ctx context.Context) (Snapshot, error) {
	for {
		s.mu.Lock()
		snap, done := s.snap, s.done
		s.mu.Unlock()
		if snap.State != Loading || done == nil {
			return snap, nil
		}
		select {
		case <-done:
		case <-ctx.Done():
			return snap, ctx.Err()
		}
	}
}

// Close cancels the in-flight lookup, if any, and discards its result.
// A screen left Loading returns to Idle. Close is idempotent.
func (s *Screen) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	var snap Snapshot
	changed := s.snap.State == Loading
	if changed {
		s.snap.State = Idle
		snap = s.snap
	}
	s.mu.Unlock()

	if changed {
		s.notify(snap)
	}
}

func (s *Screen) notify(snap Snapshot) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(snap)
	}
}
