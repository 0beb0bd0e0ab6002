package prover

import "strings"

// Formula is the sealed algebra of first-order formulae: Predicate, Not,
// And, Or, Implies, Forall, Exists. As with Term, callers type-switch on
// the concrete types; there is no method set beyond pattern matching and
// pretty-printing.
type Formula interface {
	isFormula()
	// String renders the formula in the pretty-printing convention of
	// spec §6.
	String() string
}

// Predicate is an atomic formula: a name applied to an ordered sequence
// of terms. Predicates are terminal for expansion purposes (spec §4.3's
// selection policy never picks a Predicate to expand).
type Predicate struct {
	Name string
	Args []Term
}

// NewPredicate constructs a Predicate.
func NewPredicate(name string, args ...Term) Predicate {
	return Predicate{Name: name, Args: args}
}

func (Predicate) isFormula() {}

func (p Predicate) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, a := range p.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Not is formula negation.
type Not struct{ Formula Formula }

func (Not) isFormula() {}

func (n Not) String() string { return "¬" + n.Formula.String() }

// And is conjunction.
type And struct{ Left, Right Formula }

func (And) isFormula() {}

func (a And) String() string { return "(" + a.Left.String() + " ∧ " + a.Right.String() + ")" }

// Or is disjunction.
type Or struct{ Left, Right Formula }

func (Or) isFormula() {}

func (o Or) String() string { return "(" + o.Left.String() + " ∨ " + o.Right.String() + ")" }

// Implies is material implication.
type Implies struct{ Left, Right Formula }

func (Implies) isFormula() {}

func (i Implies) String() string { return "(" + i.Left.String() + " → " + i.Right.String() + ")" }

// Forall is universal quantification, binding Var in Body.
type Forall struct {
	Var  Variable
	Body Formula
}

func (Forall) isFormula() {}

func (f Forall) String() string { return "(∀" + f.Var.String() + ". " + f.Body.String() + ")" }

// Exists is existential quantification, binding Var in Body.
type Exists struct {
	Var  Variable
	Body Formula
}

func (Exists) isFormula() {}

func (e Exists) String() string { return "(∃" + e.Var.String() + ". " + e.Body.String() + ")" }

// formulaEqual reports structural equality between two formulae,
// recursing on constructor and field equality (spec §3 invariant 1).
func formulaEqual(a, b Formula) bool {
	switch av := a.(type) {
	case Predicate:
		bv, ok := b.(Predicate)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !termEqual(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case Not:
		bv, ok := b.(Not)
		return ok && formulaEqual(av.Formula, bv.Formula)
	case And:
		bv, ok := b.(And)
		return ok && formulaEqual(av.Left, bv.Left) && formulaEqual(av.Right, bv.Right)
	case Or:
		bv, ok := b.(Or)
		return ok && formulaEqual(av.Left, bv.Left) && formulaEqual(av.Right, bv.Right)
	case Implies:
		bv, ok := b.(Implies)
		return ok && formulaEqual(av.Left, bv.Left) && formulaEqual(av.Right, bv.Right)
	case Forall:
		bv, ok := b.(Forall)
		return ok && termEqual(av.Var, bv.Var) && formulaEqual(av.Body, bv.Body)
	case Exists:
		bv, ok := b.(Exists)
		return ok && termEqual(av.Var, bv.Var) && formulaEqual(av.Body, bv.Body)
	default:
		return false
	}
}

// FreeVars returns the set of Variables free in phi: quantifiers shadow
// their bound variable (spec §3 invariant 2).
func FreeVars(phi Formula) map[Variable]struct{} {
	out := make(map[Variable]struct{})
	collectFreeVars(phi, out)
	return out
}

func collectFreeVars(phi Formula, out map[Variable]struct{}) {
	switch f := phi.(type) {
	case Predicate:
		for _, a := range f.Args {
			freeVarsInTerm(a, out)
		}
	case Not:
		collectFreeVars(f.Formula, out)
	case And:
		collectFreeVars(f.Left, out)
		collectFreeVars(f.Right, out)
	case Or:
		collectFreeVars(f.Left, out)
		collectFreeVars(f.Right, out)
	case Implies:
		collectFreeVars(f.Left, out)
		collectFreeVars(f.Right, out)
	case Forall:
		inner := make(map[Variable]struct{})
		collectFreeVars(f.Body, inner)
		delete(inner, f.Var)
		for v := range inner {
			out[v] = struct{}{}
		}
	case Exists:
		inner := make(map[Variable]struct{})
		collectFreeVars(f.Body, inner)
		delete(inner, f.Var)
		for v := range inner {
			out[v] = struct{}{}
		}
	}
}

// FreeMetavars returns the set of Metavariables free in phi.
func FreeMetavars(phi Formula) map[Metavariable]struct{} {
	out := make(map[Metavariable]struct{})
	collectFreeMetavars(phi, out)
	return out
}

func collectFreeMetavars(phi Formula, out map[Metavariable]struct{}) {
	switch f := phi.(type) {
	case Predicate:
		for _, a := range f.Args {
			freeMetavarsInTerm(a, out)
		}
	case Not:
		collectFreeMetavars(f.Formula, out)
	case And:
		collectFreeMetavars(f.Left, out)
		collectFreeMetavars(f.Right, out)
	case Or:
		collectFreeMetavars(f.Left, out)
		collectFreeMetavars(f.Right, out)
	case Implies:
		collectFreeMetavars(f.Left, out)
		collectFreeMetavars(f.Right, out)
	case Forall:
		collectFreeMetavars(f.Body, out)
	case Exists:
		collectFreeMetavars(f.Body, out)
	}
}

// occursInFormula reports whether Metavariable m appears anywhere in phi.
func occursInFormula(phi Formula, m Metavariable) bool {
	switch f := phi.(type) {
	case Predicate:
		for _, a := range f.Args {
			if occursInTerm(a, m) {
				return true
			}
		}
		return false
	case Not:
		return occursInFormula(f.Formula, m)
	case And:
		return occursInFormula(f.Left, m) || occursInFormula(f.Right, m)
	case Or:
		return occursInFormula(f.Left, m) || occursInFormula(f.Right, m)
	case Implies:
		return occursInFormula(f.Left, m) || occursInFormula(f.Right, m)
	case Forall:
		return occursInFormula(f.Body, m)
	case Exists:
		return occursInFormula(f.Body, m)
	default:
		return false
	}
}

// Replace performs whole-expression structural substitution on a formula:
// every sub-formula structurally equal to the formula old is replaced by
// new_ (spec §3 invariant 3); substituting a Term is ReplaceTerm's job.
// It is not capture-avoiding.
func Replace(phi Formula, old, new_ Formula) Formula {
	if formulaEqual(phi, old) {
		return new_
	}
	switch f := phi.(type) {
	case Predicate:
		return f
	case Not:
		return Not{Formula: Replace(f.Formula, old, new_)}
	case And:
		return And{Left: Replace(f.Left, old, new_), Right: Replace(f.Right, old, new_)}
	case Or:
		return Or{Left: Replace(f.Left, old, new_), Right: Replace(f.Right, old, new_)}
	case Implies:
		return Implies{Left: Replace(f.Left, old, new_), Right: Replace(f.Right, old, new_)}
	case Forall:
		return Forall{Var: f.Var, Body: Replace(f.Body, old, new_)}
	case Exists:
		return Exists{Var: f.Var, Body: Replace(f.Body, old, new_)}
	default:
		return phi
	}
}

// ReplaceTerm performs whole-subterm substitution of a Term within a
// formula: every occurrence of old is replaced by new_ inside every
// predicate argument (spec §3 invariant 3). This is how quantifier
// instantiation substitutes a bound Variable for a fresh
// Variable/Metavariable.
func ReplaceTerm(phi Formula, old, new_ Term) Formula {
	switch f := phi.(type) {
	case Predicate:
		args := make([]Term, len(f.Args))
		for i, a := range f.Args {
			args[i] = replaceInTerm(a, old, new_)
		}
		return Predicate{Name: f.Name, Args: args}
	case Not:
		return Not{Formula: ReplaceTerm(f.Formula, old, new_)}
	case And:
		return And{Left: ReplaceTerm(f.Left, old, new_), Right: ReplaceTerm(f.Right, old, new_)}
	case Or:
		return Or{Left: ReplaceTerm(f.Left, old, new_), Right: ReplaceTerm(f.Right, old, new_)}
	case Implies:
		return Implies{Left: ReplaceTerm(f.Left, old, new_), Right: ReplaceTerm(f.Right, old, new_)}
	case Forall:
		// old is never the bound variable here: callers always rename
		// the binder itself by constructing a fresh Forall/Exists, never
		// by replacing through one (spec §3 invariant 3 capture note).
		return Forall{Var: f.Var, Body: ReplaceTerm(f.Body, old, new_)}
	case Exists:
		return Exists{Var: f.Var, Body: ReplaceTerm(f.Body, old, new_)}
	default:
		return phi
	}
}

// SetInstantiationTime tags every sub-term of phi with time n (spec §3
// invariant 5, §4.4's reset-to-0 on proveFormula entry).
func SetInstantiationTime(phi Formula, n int) Formula {
	switch f := phi.(type) {
	case Predicate:
		args := make([]Term, len(f.Args))
		for i, a := range f.Args {
			args[i] = a.withInstantiationTime(n)
		}
		return Predicate{Name: f.Name, Args: args}
	case Not:
		return Not{Formula: SetInstantiationTime(f.Formula, n)}
	case And:
		return And{Left: SetInstantiationTime(f.Left, n), Right: SetInstantiationTime(f.Right, n)}
	case Or:
		return Or{Left: SetInstantiationTime(f.Left, n), Right: SetInstantiationTime(f.Right, n)}
	case Implies:
		return Implies{Left: SetInstantiationTime(f.Left, n), Right: SetInstantiationTime(f.Right, n)}
	case Forall:
		v := f.Var
		v.Time = n
		return Forall{Var: v, Body: SetInstantiationTime(f.Body, n)}
	case Exists:
		v := f.Var
		v.Time = n
		return Exists{Var: v, Body: SetInstantiationTime(f.Body, n)}
	default:
		return phi
	}
}
