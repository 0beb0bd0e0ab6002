package prover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcreteScenarios runs the six worked end-to-end theorems, each
// expected to settle one of proven / not-proven / independent.
func TestConcreteScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("reflexivity and symmetry close Eq(a,a)", func(t *testing.T) {
		x := NewVariable("x")
		y := NewVariable("y")
		a := NewFunction("a")
		reflexivity := Forall{Var: x, Body: NewPredicate("Eq", x, x)}
		symmetry := Forall{Var: x, Body: Forall{Var: y, Body: Implies{
			Left:  NewPredicate("Eq", x, y),
			Right: NewPredicate("Eq", y, x),
		}}}

		proven, err := Prove(ctx, []Formula{reflexivity, symmetry}, NewPredicate("Eq", a, a))
		require.NoError(t, err)
		assert.True(t, proven, "Eq(a,a) should follow from reflexivity alone")
	})

	t.Run("implication is reflexive with no axioms", func(t *testing.T) {
		x := NewVariable("x")
		goal := Forall{Var: x, Body: Implies{
			Left:  NewPredicate("P", x),
			Right: NewPredicate("P", x),
		}}

		proven, err := Prove(ctx, nil, goal)
		require.NoError(t, err)
		assert.True(t, proven, "∀x. P(x) → P(x) is a tautology")
	})

	t.Run("bare existential is independent of the empty theory", func(t *testing.T) {
		x := NewVariable("x")
		goal := Exists{Var: x, Body: NewPredicate("P", x)}

		verdict, err := ProveOrDisprove(ctx, nil, goal, WithStepBudget(500))
		require.NoError(t, err)
		assert.Equal(t, VerdictIndependent, verdict, "∃x. P(x) is neither provable nor refutable from no axioms")
	})

	t.Run("universal instantiates to a ground fact", func(t *testing.T) {
		x := NewVariable("x")
		a := NewFunction("a")
		axiom := Forall{Var: x, Body: NewPredicate("P", x)}

		proven, err := Prove(ctx, []Formula{axiom}, NewPredicate("P", a))
		require.NoError(t, err)
		assert.True(t, proven, "P(a) should follow from ∀x. P(x) via metavariable instantiation")
	})

	t.Run("ex falso quodlibet from a direct contradiction", func(t *testing.T) {
		a := NewFunction("a")
		b := NewFunction("b")
		pa := NewPredicate("P", a)
		axioms := []Formula{pa, Not{Formula: pa}}

		proven, err := Prove(ctx, axioms, NewPredicate("Q", b))
		require.NoError(t, err)
		assert.True(t, proven, "Q(b) should follow from P(a) ∧ ¬P(a) by ex falso quodlibet")
	})

	t.Run("Peano-style addition with equality axioms", func(t *testing.T) {
		x := NewVariable("x")
		y := NewVariable("y")
		zero := NewFunction("zero")
		succZero := NewFunction("S", zero)

		reflexivity := Forall{Var: x, Body: NewPredicate("Eq", x, x)}
		addZero := Forall{Var: x, Body: NewPredicate("Eq", NewFunction("add", zero, x), x)}
		addSucc := Forall{Var: x, Body: Forall{Var: y, Body: NewPredicate("Eq",
			NewFunction("add", x, NewFunction("S", y)),
			NewFunction("S", NewFunction("add", x, y)),
		)}}

		axioms := []Formula{reflexivity, addZero, addSucc}
		goal := NewPredicate("Eq", NewFunction("add", zero, succZero), succZero)

		proven, err := Prove(ctx, axioms, goal, WithStepBudget(2000))
		require.NoError(t, err)
		assert.True(t, proven, "add(0, S(0)) = S(0) should follow from the Peano addition axioms")
	})
}

// TestIdempotence checks that proving the same (axioms, goal) pair twice
// yields the same verdict (spec §8: "proving the same (axioms, goal)
// twice yields the same verdict").
func TestIdempotence(t *testing.T) {
	x := NewVariable("x")
	socrates := NewFunction("socrates")
	axiom := Forall{Var: x, Body: Implies{
		Left:  NewPredicate("Man", x),
		Right: NewPredicate("Mortal", x),
	}}
	axioms := []Formula{axiom, NewPredicate("Man", socrates)}
	goal := NewPredicate("Mortal", socrates)

	first, err1 := Prove(context.Background(), axioms, goal)
	second, err2 := Prove(context.Background(), axioms, goal)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "proving the same axioms/goal twice must yield the same verdict")
}

// TestUnifierSoundness checks that applying a discovered substitution to
// both sides of a unification makes them structurally equal (spec §8:
// "Unifier soundness").
func TestUnifierSoundness(t *testing.T) {
	t1 := NewMetavariable("t1")
	f := NewFunction("f", NewVariable("a"), NewVariable("b"))
	g := NewFunction("f", NewVariable("a"), t1)

	sub, ok := Unify(f, g)
	require.True(t, ok, "expected f(a,b) and f(a,t1) to unify")
	assert.True(t, termEqual(sub.ApplyTerm(f), sub.ApplyTerm(g)),
		"applying the unifier to both sides must yield structurally equal terms")
}

// TestTimeMonotonicity checks that no successful unifier binds a
// metavariable to a term mentioning a strictly later-introduced name
// (spec §8: "Time monotonicity").
func TestTimeMonotonicity(t *testing.T) {
	early := NewMetavariable("t1")
	early.Time = 0
	late := NewVariable("v1")
	late.Time = 3

	_, ok := Unify(early, late)
	assert.False(t, ok, "a metavariable must not bind to a term introduced at a strictly later time")
}
