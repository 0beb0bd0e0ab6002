package prover

import "go.uber.org/zap"

// Options configures a Prove/ProveOrDisprove call. There is no config
// file or flag parser behind it — the CLI collaborator that would source
// such a thing is out of spec.md's scope (spec §1) — so a small
// functional-options struct is the idiomatic stdlib-only answer; see
// SPEC_FULL.md §A.
type Options struct {
	logger     *zap.SugaredLogger
	trace      *TraceStream
	stepBudget int
}

// Option configures an Options value.
type Option func(*Options)

// WithLogger attaches a structured logger that receives Debug-level
// events for every dequeue, rule application, and sibling closure (spec
// §6's optional debug output).
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *Options) { o.logger = l }
}

// WithTrace attaches a TraceStream that receives the same events as
// WithLogger, in machine-readable form, for a caller that wants to
// consume them programmatically rather than just log them.
func WithTrace(t *TraceStream) Option {
	return func(o *Options) { o.trace = t }
}

// WithStepBudget bounds the number of engine steps before the search
// gives up and returns ErrDiverges. The prover is a semi-decision
// procedure (spec §1 Non-goals) that may otherwise search forever on a
// non-theorem that can't be refuted; a step budget is a safety valve for
// callers (tests, demos) that need a bounded run, not a prover feature —
// true divergence is still only observable via ctx cancellation. Zero
// (the default) means unbounded.
func WithStepBudget(n int) Option {
	return func(o *Options) { o.stepBudget = n }
}

func newOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
