package prover

import (
	"testing"

	"github.com/gitrdm/fop/internal/groupset"
)

func TestNewInitialSequentResetsInstantiationTimes(t *testing.T) {
	v := NewVariable("x")
	v.Time = 99
	axiom := NewPredicate("P", v)
	goal := NewPredicate("Q", v)
	s := NewInitialSequent([]Formula{axiom}, goal)

	for _, e := range s.Left {
		pred := e.formula.(Predicate)
		if pred.Args[0].instantiationTime() != 0 {
			t.Errorf("expected axiom argument time reset to 0, got %d", pred.Args[0].instantiationTime())
		}
		if e.depth != 0 {
			t.Errorf("expected axiom depth 0, got %d", e.depth)
		}
	}
	if s.Depth != 0 {
		t.Errorf("expected sequent depth 0, got %d", s.Depth)
	}
}

func TestAxiomaticallyClosedDetectsSharedFormula(t *testing.T) {
	p := NewPredicate("P", NewFunction("a"))
	s := NewInitialSequent([]Formula{p}, p)
	if !s.axiomaticallyClosed() {
		t.Errorf("expected sequent sharing a formula on both sides to close axiomatically")
	}
}

func TestAxiomaticallyClosedFalseWhenDisjoint(t *testing.T) {
	p := NewPredicate("P", NewFunction("a"))
	q := NewPredicate("Q", NewFunction("a"))
	s := NewInitialSequent([]Formula{p}, q)
	if s.axiomaticallyClosed() {
		t.Errorf("expected disjoint left/right to not close")
	}
}

func TestCloneBumpsDepthAndPreservesGroup(t *testing.T) {
	p := NewPredicate("P", NewFunction("a"))
	s := NewInitialSequent([]Formula{p}, p)
	arena := groupset.New()
	s.Group = arena.NewGroup()
	child := s.clone()
	if child.Depth != s.Depth+1 {
		t.Errorf("expected child depth %d, got %d", s.Depth+1, child.Depth)
	}
	if child.Group != s.Group {
		t.Errorf("expected child to inherit parent's group")
	}
}

func TestUnifiablePairsFindsMatchingPredicates(t *testing.T) {
	t1 := NewMetavariable("t1")
	a := NewVariable("a")
	s := NewInitialSequent([]Formula{NewPredicate("P", t1)}, NewPredicate("P", a))
	pairs := s.unifiablePairs()
	if len(pairs) != 1 {
		t.Fatalf("expected exactly one unifiable pair, got %d", len(pairs))
	}
}

func TestSequentStringRendersTurnstile(t *testing.T) {
	p := NewPredicate("P", NewFunction("a"))
	q := NewPredicate("Q", NewFunction("a"))
	s := NewInitialSequent([]Formula{p}, q)
	got := s.String()
	want := "P(a) ⊢ Q(a)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
