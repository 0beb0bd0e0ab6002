package prover

import "testing"

func TestFormulaStringRendersPrettyPrintingConvention(t *testing.T) {
	x := NewVariable("x")
	phi := Forall{Var: x, Body: Implies{
		Left:  NewPredicate("Man", x),
		Right: NewPredicate("Mortal", x),
	}}
	want := "(∀x. (Man(x) → Mortal(x)))"
	if got := phi.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFreeVarsShadowsBoundVariable(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	phi := Forall{Var: x, Body: And{
		Left:  NewPredicate("P", x),
		Right: NewPredicate("Q", y),
	}}
	free := FreeVars(phi)
	if _, ok := free[x]; ok {
		t.Errorf("bound variable x leaked into FreeVars")
	}
	if _, ok := free[y]; !ok {
		t.Errorf("expected y to be free")
	}
}

func TestReplaceTermSubstitutesInsidePredicateArgsOnly(t *testing.T) {
	x := NewVariable("x")
	m := NewMetavariable("t1")
	phi := Exists{Var: x, Body: NewPredicate("P", x)}
	replaced := ReplaceTerm(phi.Body, x, m)
	want := NewPredicate("P", m)
	if !formulaEqual(replaced, want) {
		t.Errorf("got %s, want %s", replaced.String(), want.String())
	}
}

func TestSetInstantiationTimeTagsQuantifierBinderAndArgs(t *testing.T) {
	x := NewVariable("x")
	phi := Forall{Var: x, Body: NewPredicate("P", x)}
	tagged := SetInstantiationTime(phi, 3).(Forall)
	if tagged.Var.Time != 3 {
		t.Errorf("expected binder time 3, got %d", tagged.Var.Time)
	}
	pred := tagged.Body.(Predicate)
	if pred.Args[0].instantiationTime() != 3 {
		t.Errorf("expected body arg time 3, got %d", pred.Args[0].instantiationTime())
	}
}

func TestStructuralEqualDistinguishesConstructors(t *testing.T) {
	a := NewPredicate("P", NewVariable("x"))
	n := Not{Formula: a}
	if StructuralEqual(a, n) {
		t.Errorf("Predicate and Not must not be structurally equal")
	}
	if !StructuralEqual(a, NewPredicate("P", NewVariable("x"))) {
		t.Errorf("two structurally identical predicates must be equal")
	}
}
