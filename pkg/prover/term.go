// Package prover implements a first-order sequent-calculus theorem prover:
// a breadth-first search over sequents, extended with Robinson-style
// free-variable unification, that decides whether a goal formula is a
// classical consequence of a finite axiom set.
//
// The package is the core described in spec.md — the concrete syntax
// lexer/parser, the interactive CLI shell, and the arithmetic axiom
// library are deliberately not part of it; callers build Term/Formula
// values directly and hand them to Prove or ProveOrDisprove.
package prover

import "strings"

// Term is the sealed algebra of first-order terms: Variable, Metavariable,
// or Function applied to a sequence of sub-terms. There is no exported
// interface method set beyond what's needed for pattern matching and
// pretty-printing; callers type-switch on the concrete types.
type Term interface {
	isTerm()
	// String renders the term in the pretty-printing convention of spec §6.
	String() string
	// instantiationTime returns the term's current instantiation time.
	instantiationTime() int
	// withInstantiationTime returns a copy of the term with every
	// sub-term's instantiation time set to n (spec §3 invariant 5).
	withInstantiationTime(n int) Term
}

// Variable is a bound or universally-introduced term variable. Two
// Variables are structurally equal iff their names are equal — name
// collisions across Variable and Metavariable are NOT equal (spec §3
// invariant 1).
type Variable struct {
	Name string
	Time int
}

// NewVariable constructs a Variable with instantiation time 0.
func NewVariable(name string) Variable { return Variable{Name: name} }

func (Variable) isTerm() {}

func (v Variable) String() string { return v.Name }

func (v Variable) instantiationTime() int { return v.Time }

func (v Variable) withInstantiationTime(n int) Term {
	v.Time = n
	return v
}

// Metavariable is a unification variable: a placeholder for an as-yet
// undetermined witness, introduced by the Exists-right / Forall-left
// rules (spec §4.3) and resolved by the unifier (spec §4.2).
type Metavariable struct {
	Name string
	Time int
}

// NewMetavariable constructs a Metavariable with instantiation time 0.
func NewMetavariable(name string) Metavariable { return Metavariable{Name: name} }

func (Metavariable) isTerm() {}

func (m Metavariable) String() string { return m.Name }

func (m Metavariable) instantiationTime() int { return m.Time }

func (m Metavariable) withInstantiationTime(n int) Term {
	m.Time = n
	return m
}

// Function is an n-ary functor applied to an ordered sequence of terms.
// n == 0 represents a constant. Function's own instantiation time is the
// max of its arguments' (spec §3: "Instantiation time ... is the max of
// its arguments', recomputed on tagging"); it is not separately settable.
type Function struct {
	Name string
	Args []Term
}

// NewFunction constructs a Function. Its instantiation time is not
// stored: instantiationTime computes it as the max of its arguments' times.
func NewFunction(name string, args ...Term) Function {
	return Function{Name: name, Args: args}
}

func (Function) isTerm() {}

func (f Function) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, a := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (f Function) instantiationTime() int {
	max := 0
	for _, a := range f.Args {
		if t := a.instantiationTime(); t > max {
			max = t
		}
	}
	return max
}

func (f Function) withInstantiationTime(n int) Term {
	args := make([]Term, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.withInstantiationTime(n)
	}
	return Function{Name: f.Name, Args: args}
}

// termEqual reports structural equality between two terms: same
// constructor, same fields, recursively (spec §3 invariant 1). Names
// colliding across Variable/Metavariable/Function are never equal.
func termEqual(a, b Term) bool {
	switch av := a.(type) {
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.Name == bv.Name
	case Metavariable:
		bv, ok := b.(Metavariable)
		return ok && av.Name == bv.Name
	case Function:
		bv, ok := b.(Function)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !termEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// occursInTerm reports whether Metavariable m appears anywhere inside t
// (spec §3 invariant 4, the unifier's occurs check).
func occursInTerm(t Term, m Metavariable) bool {
	switch tv := t.(type) {
	case Metavariable:
		return tv.Name == m.Name
	case Variable:
		return false
	case Function:
		for _, a := range tv.Args {
			if occursInTerm(a, m) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// replaceInTerm performs whole-subterm substitution: every occurrence of
// old (compared by structural equality) is replaced by new. It is not
// capture-avoiding at the binder level (spec §3 invariant 3); callers
// instantiate quantifiers with fresh names to avoid capture.
func replaceInTerm(t Term, old, new_ Term) Term {
	if termEqual(t, old) {
		return new_
	}
	if f, ok := t.(Function); ok {
		args := make([]Term, len(f.Args))
		changed := false
		for i, a := range f.Args {
			r := replaceInTerm(a, old, new_)
			if !termEqual(r, a) {
				changed = true
			}
			args[i] = r
		}
		if !changed {
			return t
		}
		return Function{Name: f.Name, Args: args}
	}
	return t
}

// freeVarsInTerm collects every Variable occurring in t.
func freeVarsInTerm(t Term, out map[Variable]struct{}) {
	switch tv := t.(type) {
	case Variable:
		out[tv] = struct{}{}
	case Function:
		for _, a := range tv.Args {
			freeVarsInTerm(a, out)
		}
	}
}

// freeMetavarsInTerm collects every Metavariable occurring in t.
func freeMetavarsInTerm(t Term, out map[Metavariable]struct{}) {
	switch tv := t.(type) {
	case Metavariable:
		out[tv] = struct{}{}
	case Function:
		for _, a := range tv.Args {
			freeMetavarsInTerm(a, out)
		}
	}
}
