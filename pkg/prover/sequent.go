package prover

import (
	"strings"

	"github.com/gitrdm/fop/internal/groupset"
)

// Sequent is the judgment Γ ⊢ Δ (spec §3): two depth-tagged multisets of
// formulae, an optional sibling-group membership, and the sequent's own
// global expansion depth. ID is assigned by the Engine that owns the
// sequent's arena slot; it exists purely so the sibling-group arena
// (internal/groupset) can track membership by id rather than by pointer
// identity or a second copy of the formula maps.
type Sequent struct {
	ID    int
	Left  formulaMap
	Right formulaMap
	Group groupset.ID // groupset.Nil if this sequent has no open sibling commitments
	Depth int
}

// NewInitialSequent builds the root sequent {axiom:0, ...} ⊢ {goal:0},
// absent sibling group, depth 0 (spec §4.4's proveFormula contract). Every
// formula's instantiation time is reset to 0, matching
// original_source/prover.py's proveSequent: "reset the time for each
// formula in the sequent."
func NewInitialSequent(axioms []Formula, goal Formula) *Sequent {
	left := make(formulaMap, len(axioms))
	for _, a := range axioms {
		left.insert(SetInstantiationTime(a, 0), 0)
	}
	right := make(formulaMap, 1)
	right.insert(SetInstantiationTime(goal, 0), 0)
	return &Sequent{
		Left:  left,
		Right: right,
		Depth: 0,
	}
}

// hasGroup reports whether this sequent carries an open sibling
// commitment.
func (s *Sequent) hasGroup() bool { return s.Group != groupset.Nil }

// axiomaticallyClosed reports whether left and right share at least one
// formula, closing the sequent without unification (spec §3 invariant
// 7).
func (s *Sequent) axiomaticallyClosed() bool {
	return s.Left.intersects(s.Right)
}

// combinedFreeNames returns every Variable and Metavariable name in use
// across both sides, used by fresh-name generation (spec §4.3, "Fresh
// names").
func (s *Sequent) combinedFreeNames() map[string]struct{} {
	out := make(map[string]struct{})
	for _, e := range s.Left {
		for v := range FreeVars(e.formula) {
			out[v.Name] = struct{}{}
		}
		for m := range FreeMetavars(e.formula) {
			out[m.Name] = struct{}{}
		}
	}
	for _, e := range s.Right {
		for v := range FreeVars(e.formula) {
			out[v.Name] = struct{}{}
		}
		for m := range FreeMetavars(e.formula) {
			out[m.Name] = struct{}{}
		}
	}
	return out
}

// unifiablePairs returns every (left-formula, right-formula) pair whose
// predicates unify (spec §3 invariant 8, §4.3's getUnifiablePairs — only
// used within simultaneous sibling closure).
func (s *Sequent) unifiablePairs() []TermPair2 {
	var pairs []TermPair2
	for _, le := range s.Left {
		for _, re := range s.Right {
			if _, ok := UnifyFormulas(le.formula, re.formula); ok {
				pairs = append(pairs, TermPair2{Left: le.formula, Right: re.formula})
			}
		}
	}
	return pairs
}

// TermPair2 is one candidate closing pair of formulae (spec §4.3: "all
// (φ_L, φ_R) with φ_L ∈ left, φ_R ∈ right that unify").
type TermPair2 struct{ Left, Right Formula }

// String renders the sequent per spec §6's pretty-printing convention:
// "left1, left2, … ⊢ right1, right2, …".
func (s *Sequent) String() string {
	var b strings.Builder
	first := true
	for _, e := range s.Left {
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(e.formula.String())
		first = false
	}
	if !first {
		b.WriteByte(' ')
	}
	b.WriteString("⊢")
	first = true
	for _, e := range s.Right {
		if first {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(e.formula.String())
		first = false
	}
	return b.String()
}

// clone returns a child sequent copying left/right (spec §4.3: "Each
// child copies the parent's left and right maps"), inheriting the
// parent's sibling group and bumping depth by one. The new sequent's own
// arena ID is assigned by the Engine when it's enqueued.
func (s *Sequent) clone() *Sequent {
	return &Sequent{
		Left:  s.Left.clone(),
		Right: s.Right.clone(),
		Group: s.Group,
		Depth: s.Depth + 1,
	}
}
