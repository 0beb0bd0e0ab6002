package prover

import (
	"context"
	"sort"

	"github.com/gitrdm/fop/internal/groupset"
	"go.uber.org/zap"
)

// StepResult is the outcome of one Engine.Step call (spec design note
// 9.3: "a Search object with a step() method returning Running |
// Closed(verdict)").
type StepResult int

const (
	// StepRunning means the frontier still has work; call Step again.
	StepRunning StepResult = iota
	// StepProven means the frontier is empty: every sequent closed,
	// either axiomatically or by simultaneous sibling unification (spec
	// §4.3: "no more sequents to prove" returns true).
	StepProven
	// StepStuck means a branch reached a state with no non-atomic
	// formula and no closing unifier — the search result is false (spec
	// §7 kind 2).
	StepStuck
)

// Engine performs breadth-first search over open sequents (spec §4.3).
// It is single-threaded: Step must not be called concurrently from
// multiple goroutines (spec §5, "Inside a single search, there is no
// concurrency").
type Engine struct {
	arena    map[int]*Sequent
	frontier []int
	proven   map[int]struct{}
	groups   *groupset.Set
	nextID   int

	log   *zap.SugaredLogger
	trace *TraceStream
}

// NewEngine constructs an Engine seeded with the given initial sequent.
// log and trace may both be nil: a nil logger is a no-op (via
// zap.NewNop().Sugar() internally), and a nil trace means no debug
// events are emitted.
func NewEngine(initial *Sequent, log *zap.SugaredLogger, trace *TraceStream) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	e := &Engine{
		arena:  make(map[int]*Sequent),
		proven: make(map[int]struct{}),
		groups: groupset.New(),
		log:    log,
		trace:  trace,
	}
	e.enqueue(initial)
	return e
}

func (e *Engine) enqueue(s *Sequent) int {
	id := e.nextID
	e.nextID++
	s.ID = id
	e.arena[id] = s
	e.frontier = append(e.frontier, id)
	if s.hasGroup() {
		e.groups.Add(s.Group, id)
	}
	return id
}

// Step performs exactly one breadth-first search step (spec §5: "a step
// consists of (a) dequeueing one sequent, (b) attempting axiomatic or
// unification closure, (c) if neither, applying exactly one expansion
// rule and enqueueing the resulting 1-2 sequents"). Cancellation is
// observed only at step boundaries, per spec §5.
func (e *Engine) Step(ctx context.Context) (StepResult, error) {
	if err := ctx.Err(); err != nil {
		return StepRunning, err
	}

	cur := e.dequeue()
	if cur == nil {
		return StepProven, nil
	}
	e.emit(TraceEvent{Kind: TraceDequeue, Sequent: cur.String()})
	e.log.Debugw("dequeued sequent", "depth", cur.Depth, "sequent", cur.String())

	if cur.axiomaticallyClosed() {
		e.proven[cur.ID] = struct{}{}
		e.emit(TraceEvent{Kind: TraceAxiomaticClose, Sequent: cur.String()})
		e.log.Debugw("axiomatically closed", "sequent", cur.String())
		return StepRunning, nil
	}

	if cur.hasGroup() {
		closed, err := e.tryCloseGroup(cur)
		if err != nil {
			return StepRunning, err
		}
		if closed {
			return StepRunning, nil
		}
		// When some member had no candidate pair, tryCloseGroup dropped
		// cur's id from the group's member set; cur.Group itself is left
		// as is, so cur.hasGroup() stays true and the children expanded
		// below inherit the group and rejoin it when enqueued. Either
		// way we fall through to ordinary expansion below, exactly like
		// original_source/prover.py's single while-loop body.
	}

	formula, side, depth, ok := selectExpansion(cur)
	if !ok {
		e.emit(TraceEvent{Kind: TraceStuck, Sequent: cur.String()})
		e.log.Debugw("stuck: no non-atomic formula and no closing unifier", "sequent", cur.String())
		return StepStuck, nil
	}
	e.emit(TraceEvent{Kind: TraceExpand, Sequent: cur.String(), Formula: formula.String(), Side: side})
	e.log.Debugw("expanding formula", "side", side, "formula", formula.String(), "sequent", cur.String())
	e.expand(cur, formula, side, depth)
	return StepRunning, nil
}

func (e *Engine) emit(ev TraceEvent) {
	if e.trace == nil {
		return
	}
	e.trace.Put(context.Background(), ev)
}

// dequeue pops the next not-yet-proven sequent off the frontier,
// skipping any id that's already in proven (e.g. closed as part of a
// sibling group while still queued). Returns nil when the frontier is
// exhausted.
func (e *Engine) dequeue() *Sequent {
	for len(e.frontier) > 0 {
		id := e.frontier[0]
		e.frontier = e.frontier[1:]
		if _, done := e.proven[id]; done {
			continue
		}
		return e.arena[id]
	}
	return nil
}

// tryCloseGroup attempts to close cur's whole sibling group with a
// single simultaneous unifier (spec §4.3's "Simultaneous sibling
// closure"). Returns true if the group closed. If some member has no
// candidate closing pair at all, cur is unlinked from the group (spec
// mirrors original_source/prover.py: "unlink this sequent") and false is
// returned so the caller proceeds to ordinary expansion of cur.
func (e *Engine) tryCloseGroup(cur *Sequent) (bool, error) {
	memberIDs := e.groups.Members(cur.Group)
	sort.Ints(memberIDs) // fixed sibling order (spec §4.3: "lexicographic over a per-sibling index"); each sibling's pairs follow map iteration order

	members := make([]*Sequent, 0, len(memberIDs))
	for _, id := range memberIDs {
		if s, ok := e.arena[id]; ok {
			if _, done := e.proven[id]; !done {
				members = append(members, s)
			}
		}
	}

	pairLists := make([][]TermPair2, len(members))
	for i, m := range members {
		pairLists[i] = m.unifiablePairs()
	}
	for _, pl := range pairLists {
		if len(pl) == 0 {
			e.groups.Remove(cur.Group, cur.ID)
			return false, nil
		}
	}

	idx := make([]int, len(pairLists))
	for {
		chosen := make([]TermPair2, len(pairLists))
		for i, pl := range pairLists {
			chosen[i] = pl[idx[i]]
		}
		if sub, ok := UnifyFormulaList(chosen); ok {
			e.closeGroup(cur.Group, members, sub)
			return true, nil
		}
		if !incrementOdometer(idx, pairLists) {
			return false, nil
		}
	}
}

// incrementOdometer advances idx as a mixed-radix counter, last position
// fastest-varying, matching original_source/prover.py's increment loop.
// Returns false once every combination has been tried.
func incrementOdometer(idx []int, pairLists [][]TermPair2) bool {
	pos := len(idx) - 1
	for pos >= 0 {
		idx[pos]++
		if idx[pos] < len(pairLists[pos]) {
			return true
		}
		idx[pos] = 0
		pos--
	}
	return false
}

func (e *Engine) closeGroup(group groupset.ID, members []*Sequent, sub *Substitution) {
	for _, m := range members {
		e.proven[m.ID] = struct{}{}
	}
	entries := sub.Entries()
	rendered := make([]string, len(entries))
	for i, en := range entries {
		rendered[i] = en.Meta.String() + " = " + en.Term.String()
	}
	e.emit(TraceEvent{
		Kind:      TraceSiblingClose,
		GroupSize: len(members),
		Unifier:   joinStrings(rendered, "; "),
	})
	e.log.Debugw("simultaneous sibling closure", "group_size", len(members), "unifier", rendered)
}

func joinStrings(ss []string, sep string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}

// selectExpansion implements spec §4.3's selection policy step (c): the
// lowest-depth non-Predicate formula from each side, with the side whose
// candidate has the smaller depth winning; equal depths prefer the right
// side, matching original_source/prover.py's `if left_depth < right_depth:
// apply_left else: apply_right`. When only one side has a candidate, that
// side is chosen.
func selectExpansion(s *Sequent) (formula Formula, side string, depth int, ok bool) {
	lf, ld, lok := lowestDepthNonAtomic(s.Left)
	rf, rd, rok := lowestDepthNonAtomic(s.Right)
	switch {
	case !lok && !rok:
		return nil, "", 0, false
	case lok && !rok:
		return lf, "left", ld, true
	case !lok && rok:
		return rf, "right", rd, true
	case ld < rd:
		return lf, "left", ld, true
	default:
		return rf, "right", rd, true
	}
}

func lowestDepthNonAtomic(m formulaMap) (Formula, int, bool) {
	var best Formula
	bestDepth := -1
	found := false
	for _, e := range m {
		if _, atomic := e.formula.(Predicate); atomic {
			continue
		}
		if !found || e.depth < bestDepth {
			best, bestDepth, found = e.formula, e.depth, true
		}
	}
	return best, bestDepth, found
}

// expand applies exactly one expansion rule to formula (found at depth d
// on the named side of cur), enqueueing the resulting 1-2 children (spec
// §4.3's rule table).
func (e *Engine) expand(cur *Sequent, formula Formula, side string, d int) {
	if side == "left" {
		e.expandLeft(cur, formula, d)
	} else {
		e.expandRight(cur, formula, d)
	}
}

func (e *Engine) expandLeft(cur *Sequent, formula Formula, d int) {
	switch f := formula.(type) {
	case Not:
		child := cur.clone()
		child.Left.remove(formula)
		child.Right.insert(f.Formula, d+1)
		e.enqueue(child)
	case And:
		child := cur.clone()
		child.Left.remove(formula)
		child.Left.insert(f.Left, d+1)
		child.Left.insert(f.Right, d+1)
		e.enqueue(child)
	case Or:
		a := cur.clone()
		a.Left.remove(formula)
		a.Left.insert(f.Left, d+1)
		e.enqueue(a)
		b := cur.clone()
		b.Left.remove(formula)
		b.Left.insert(f.Right, d+1)
		e.enqueue(b)
	case Implies:
		a := cur.clone()
		a.Left.remove(formula)
		a.Right.insert(f.Left, d+1)
		e.enqueue(a)
		b := cur.clone()
		b.Left.remove(formula)
		b.Left.insert(f.Right, d+1)
		e.enqueue(b)
	case Forall:
		child := cur.clone()
		child.Left.remove(formula)
		child.Left.insert(formula, d+1) // retained, depth bumped
		taken := cur.combinedFreeNames()
		meta := NewMetavariable(freshMetavariableName(taken))
		meta.Time = cur.Depth + 1
		instantiated := SetInstantiationTime(ReplaceTerm(f.Body, f.Var, meta), cur.Depth+1)
		child.Left.insert(instantiated, d+1)
		e.ensureGroup(child)
		e.enqueue(child)
	case Exists:
		child := cur.clone()
		child.Left.remove(formula)
		taken := cur.combinedFreeNames()
		v := NewVariable(freshVariableName(taken))
		v.Time = cur.Depth + 1
		instantiated := SetInstantiationTime(ReplaceTerm(f.Body, f.Var, v), cur.Depth+1)
		child.Left.insert(instantiated, d+1)
		e.enqueue(child)
	}
}

func (e *Engine) expandRight(cur *Sequent, formula Formula, d int) {
	switch f := formula.(type) {
	case Not:
		child := cur.clone()
		child.Right.remove(formula)
		child.Left.insert(f.Formula, d+1)
		e.enqueue(child)
	case And:
		a := cur.clone()
		a.Right.remove(formula)
		a.Right.insert(f.Left, d+1)
		e.enqueue(a)
		b := cur.clone()
		b.Right.remove(formula)
		b.Right.insert(f.Right, d+1)
		e.enqueue(b)
	case Or:
		child := cur.clone()
		child.Right.remove(formula)
		child.Right.insert(f.Left, d+1)
		child.Right.insert(f.Right, d+1)
		e.enqueue(child)
	case Implies:
		child := cur.clone()
		child.Right.remove(formula)
		child.Left.insert(f.Left, d+1)
		child.Right.insert(f.Right, d+1)
		e.enqueue(child)
	case Forall:
		child := cur.clone()
		child.Right.remove(formula)
		taken := cur.combinedFreeNames()
		v := NewVariable(freshVariableName(taken))
		v.Time = cur.Depth + 1
		instantiated := SetInstantiationTime(ReplaceTerm(f.Body, f.Var, v), cur.Depth+1)
		child.Right.insert(instantiated, d+1)
		e.enqueue(child)
	case Exists:
		child := cur.clone()
		child.Right.remove(formula)
		child.Right.insert(formula, d+1) // retained, depth bumped
		taken := cur.combinedFreeNames()
		meta := NewMetavariable(freshMetavariableName(taken))
		meta.Time = cur.Depth + 1
		instantiated := SetInstantiationTime(ReplaceTerm(f.Body, f.Var, meta), cur.Depth+1)
		child.Right.insert(instantiated, d+1)
		e.ensureGroup(child)
		e.enqueue(child)
	}
}

// ensureGroup initializes child's sibling group if absent (spec §4.3:
// "Initialises siblings to an empty set if absent"). It does not add child
// to the group itself: enqueue records membership for every sequent that
// carries a group, so a child that already belongs to a group joins the
// existing one — membership is transitive (spec §3 invariant 9).
func (e *Engine) ensureGroup(child *Sequent) {
	if !child.hasGroup() {
		child.Group = e.groups.NewGroup()
	}
}
