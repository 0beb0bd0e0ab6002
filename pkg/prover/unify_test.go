package prover

import "testing"

func TestUnifyMetavariableBindsToFunction(t *testing.T) {
	m := NewMetavariable("t1")
	m.Time = 5
	f := NewFunction("zero")
	sub, ok := Unify(m, f)
	if !ok {
		t.Fatalf("expected unification to succeed")
	}
	bound, ok := sub.Lookup(m)
	if !ok || !termEqual(bound, f) {
		t.Errorf("expected t1 bound to zero, got %v", bound)
	}
}

func TestUnifyFailsOnInstantiationTimeViolation(t *testing.T) {
	m := NewMetavariable("t1")
	m.Time = 0 // introduced earlier
	v := NewVariable("v1")
	v.Time = 1 // introduced later — must not be allowed into t1's binding
	if _, ok := Unify(m, v); ok {
		t.Errorf("expected unification to fail the instantiation-time check")
	}
}

func TestUnifyAllowsEqualOrEarlierTime(t *testing.T) {
	m := NewMetavariable("t1")
	m.Time = 2
	v := NewVariable("v1")
	v.Time = 2
	if _, ok := Unify(m, v); !ok {
		t.Errorf("expected unification to succeed when times are equal")
	}
}

func TestUnifyOccursCheckRejectsSelfReference(t *testing.T) {
	m := NewMetavariable("t1")
	nested := NewFunction("f", m)
	if _, ok := Unify(m, nested); ok {
		t.Errorf("expected occurs check to reject t1 = f(t1)")
	}
}

func TestUnifyFunctionsRequireSameNameAndArity(t *testing.T) {
	a := NewFunction("f", NewVariable("x"))
	b := NewFunction("g", NewVariable("x"))
	if _, ok := Unify(a, b); ok {
		t.Errorf("expected unification to fail on mismatched function names")
	}
	c := NewFunction("f", NewVariable("x"), NewVariable("y"))
	if _, ok := Unify(a, c); ok {
		t.Errorf("expected unification to fail on mismatched arity")
	}
}

func TestUnifyThreadsSubstitutionAcrossArguments(t *testing.T) {
	t1 := NewMetavariable("t1")
	x := NewVariable("x")
	a := NewFunction("pair", t1, t1)
	b := NewFunction("pair", x, x)
	sub, ok := Unify(a, b)
	if !ok {
		t.Fatalf("expected unification to succeed")
	}
	bound, _ := sub.Lookup(t1)
	if !termEqual(bound, x) {
		t.Errorf("expected t1 bound to x, got %v", bound)
	}
}

func TestUnifyFormulasRequiresSamePredicateNameAndArity(t *testing.T) {
	a := NewPredicate("P", NewVariable("x"))
	b := NewPredicate("Q", NewVariable("x"))
	if _, ok := UnifyFormulas(a, b); ok {
		t.Errorf("expected predicate unification to fail on mismatched names")
	}
	c := NewPredicate("P", NewMetavariable("t1"))
	if _, ok := UnifyFormulas(a, c); !ok {
		t.Errorf("expected predicate unification to succeed")
	}
}

func TestUnifyFormulaListThreadsSubstitutionAcrossSiblings(t *testing.T) {
	t1 := NewMetavariable("t1")
	t2 := NewMetavariable("t2")
	a := NewVariable("a")
	b := NewVariable("b")

	pairs := []TermPair2{
		{Left: NewPredicate("P", t1), Right: NewPredicate("P", a)},
		{Left: NewPredicate("Q", t1, t2), Right: NewPredicate("Q", a, b)},
	}
	sub, ok := UnifyFormulaList(pairs)
	if !ok {
		t.Fatalf("expected simultaneous unification to succeed")
	}
	if bound, _ := sub.Lookup(t1); !termEqual(bound, a) {
		t.Errorf("expected t1 bound to a, got %v", bound)
	}
	if bound, _ := sub.Lookup(t2); !termEqual(bound, b) {
		t.Errorf("expected t2 bound to b, got %v", bound)
	}
}

func TestUnifyFormulaListFailsWhenSiblingsConflict(t *testing.T) {
	t1 := NewMetavariable("t1")
	a := NewVariable("a")
	b := NewVariable("b")
	pairs := []TermPair2{
		{Left: NewPredicate("P", t1), Right: NewPredicate("P", a)},
		{Left: NewPredicate("Q", t1), Right: NewPredicate("Q", b)},
	}
	if _, ok := UnifyFormulaList(pairs); ok {
		t.Errorf("expected conflicting bindings for t1 to fail")
	}
}
