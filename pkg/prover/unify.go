package prover

// Unify attempts to unify two terms, returning the most general
// substitution that makes them structurally equal, or (nil, false) if no
// unifier exists (spec §4.2). There is no recoverable "error": failure to
// unify is a normal negative result that drives the search, not an
// exception (spec §7).
func Unify(a, b Term) (*Substitution, bool) {
	switch av := a.(type) {
	case Metavariable:
		return unifyMetavariable(av, b)
	}
	switch bv := b.(type) {
	case Metavariable:
		return unifyMetavariable(bv, a)
	}
	switch av := a.(type) {
	case Variable:
		bv, ok := b.(Variable)
		if !ok || av.Name != bv.Name {
			return nil, false
		}
		return NewSubstitution(), true
	case Function:
		bv, ok := b.(Function)
		if !ok {
			return nil, false
		}
		return unifyArgLists(av.Name, av.Args, bv.Name, bv.Args)
	default:
		return nil, false
	}
}

// unifyMetavariable handles the two symmetric cases of spec §4.2 steps
// 1–2: m is a Metavariable, t is anything (possibly itself a
// Metavariable). The occurs check and the instantiation-time check are
// the soundness heart of the prover (spec §4.2's "time check" note): a
// metavariable introduced earlier than a Variable/Metavariable appearing
// in t cannot be bound to t, because t may mention something that did
// not exist yet when m was chosen (the eigenvariable condition).
func unifyMetavariable(m Metavariable, t Term) (*Substitution, bool) {
	if tm, ok := t.(Metavariable); ok && tm.Name == m.Name {
		return NewSubstitution(), true
	}
	if occursInTerm(t, m) {
		return nil, false
	}
	if t.instantiationTime() > m.Time {
		return nil, false
	}
	s := NewSubstitution()
	s.add(m, t)
	return s, true
}

// unifyArgLists unifies two equal-name, equal-arity argument lists
// left-to-right, applying the accumulated substitution to both sides
// before each pair (spec §4.2 step 4).
func unifyArgLists(nameA string, argsA []Term, nameB string, argsB []Term) (*Substitution, bool) {
	if nameA != nameB || len(argsA) != len(argsB) {
		return nil, false
	}
	acc := NewSubstitution()
	for i := range argsA {
		a := acc.ApplyTerm(argsA[i])
		b := acc.ApplyTerm(argsB[i])
		step, ok := Unify(a, b)
		if !ok {
			return nil, false
		}
		acc.merge(step)
	}
	return acc, true
}

// UnifyFormulas unifies two Predicates of the same name and arity,
// term-by-term (spec §3 invariant 8: "some formula in left and some in
// right have the same predicate symbol, arity, and a unifier exists for
// their argument tuples").
func UnifyFormulas(a, b Formula) (*Substitution, bool) {
	pa, ok := a.(Predicate)
	if !ok {
		return nil, false
	}
	pb, ok := b.(Predicate)
	if !ok {
		return nil, false
	}
	return unifyArgLists(pa.Name, pa.Args, pb.Name, pb.Args)
}

// TermPair is one equation in a list to be unified simultaneously.
type TermPair struct{ A, B Term }

// UnifyList solves a list of term equations as a left-to-right fold with
// substitution accumulation (spec §4.2, `unify_list`). The prover itself
// does not call it: a predicate's argument tuple is unified by
// unifyArgLists, and a sibling group is closed with UnifyFormulaList.
func UnifyList(pairs []TermPair) (*Substitution, bool) {
	acc := NewSubstitution()
	for _, p := range pairs {
		a := acc.ApplyTerm(p.A)
		b := acc.ApplyTerm(p.B)
		step, ok := Unify(a, b)
		if !ok {
			return nil, false
		}
		acc.merge(step)
	}
	return acc, true
}

// UnifyFormulaList is UnifyList's counterpart over whole Predicate pairs:
// it's what the engine calls to close an entire sibling group with one
// simultaneous unifier (spec §4.3's "Simultaneous sibling closure"),
// threading the accumulated substitution across siblings exactly as
// UnifyList threads it across a single predicate's arguments.
func UnifyFormulaList(pairs []TermPair2) (*Substitution, bool) {
	acc := NewSubstitution()
	for _, p := range pairs {
		lf := acc.ApplyFormula(p.Left)
		rf := acc.ApplyFormula(p.Right)
		step, ok := UnifyFormulas(lf, rf)
		if !ok {
			return nil, false
		}
		acc.merge(step)
	}
	return acc, true
}
