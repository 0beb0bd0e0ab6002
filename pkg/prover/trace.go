package prover

import (
	"context"
	"sync"
	"sync/atomic"
)

// TraceEventKind classifies a TraceEvent (spec §6: "optionally, for
// debugging, a stream of expanded sequents and discovered unifiers").
type TraceEventKind int

const (
	// TraceDequeue is emitted each time the engine pops a sequent off
	// the frontier, before any closure check (original_source/prover.py
	// prints "%s. %s" % (depth, sequent) at this point).
	TraceDequeue TraceEventKind = iota
	// TraceAxiomaticClose is emitted when a sequent closes via shared
	// left/right formula, with no unification needed.
	TraceAxiomaticClose
	// TraceExpand is emitted when a rule fires, naming the formula
	// expanded and which side it came from.
	TraceExpand
	// TraceSiblingClose is emitted when a simultaneous unifier closes an
	// entire sibling group, carrying the winning substitution
	// (original_source/prover.py prints every sibling sequent plus every
	// substitution entry at this point).
	TraceSiblingClose
	// TraceStuck is emitted when a branch has no non-atomic formula left
	// and no closing unifier — the search returns false for that branch.
	TraceStuck
)

// TraceEvent is one unit of engine-observable progress.
type TraceEvent struct {
	Kind        TraceEventKind
	Sequent     string // String() of the sequent involved
	Formula     string // String() of the formula expanded, when Kind == TraceExpand
	Side        string // "left" or "right", when Kind == TraceExpand
	Unifier     string // rendered substitution, when Kind == TraceSiblingClose
	GroupSize   int    // sibling group size, when Kind == TraceSiblingClose
}

// TraceStream is a lazily-consumed, thread-safe stream of TraceEvents
// (trimmed to the single-purpose shape this package needs: an engine
// producer, a debugging consumer, no merge/filter combinators).
type TraceStream struct {
	ch     chan TraceEvent
	count  int64
	closed int32
	mu     sync.Mutex
}

// NewTraceStream creates a channel-backed trace stream with the given
// buffer size. A bufferSize of 0 creates an unbuffered channel, which
// means the engine blocks on every event until a consumer reads it — use
// a small positive buffer for non-blocking debug tracing.
func NewTraceStream(bufferSize int) *TraceStream {
	return &TraceStream{ch: make(chan TraceEvent, bufferSize)}
}

// Put adds an event to the stream. Silently drops the event if the
// stream has already been closed, so a producer never has to check
// Close() before every emit.
func (s *TraceStream) Put(ctx context.Context, ev TraceEvent) {
	if atomic.LoadInt32(&s.closed) == 1 {
		return
	}
	select {
	case s.ch <- ev:
		atomic.AddInt64(&s.count, 1)
	case <-ctx.Done():
	}
}

// Events returns the receive-only channel of events, for `for ev := range
// stream.Events()` consumption.
func (s *TraceStream) Events() <-chan TraceEvent { return s.ch }

// Close closes the stream; safe to call more than once.
func (s *TraceStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		close(s.ch)
	}
}

// Count returns the number of events put into the stream so far.
func (s *TraceStream) Count() int64 { return atomic.LoadInt64(&s.count) }
