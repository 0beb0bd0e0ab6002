package prover

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// WellFormedError reports one structural defect found while validating a
// formula (spec §7 kind 4, "Malformed input"). A formula can carry more
// than one defect at once — e.g. two Forall binders each with an empty
// name — so validation collects every defect in one pass rather than
// stopping at the first.
type WellFormedError struct {
	// Path is a human-readable location of the defect within the
	// formula, e.g. "Forall.Var" or "And.Left.Not.Predicate".
	Path string
	// Reason describes what's wrong.
	Reason string
}

func (e *WellFormedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// CheckWellFormed validates phi's syntactic well-formedness. Spec §7 kind
// 4's example — "a bound-variable slot containing a non-Variable" — cannot
// be constructed through Forall/Exists's typed Var field in this API, so
// the binder check is that every quantifier's bound Variable has a
// non-empty name. It also rejects empty Predicate, Function, Variable and
// Metavariable names, and any formula or term variant outside this
// package's algebra. Names are checked only for emptiness; their
// characters are not checked.
//
// Returns nil if phi is well-formed, or a *multierror.Error aggregating
// every defect found (range over .Errors for each one, or treat the
// return value as a single error).
func CheckWellFormed(phi Formula) error {
	var result *multierror.Error
	checkFormulaWellFormed(phi, "", &result)
	return result.ErrorOrNil()
}

func checkFormulaWellFormed(phi Formula, path string, result **multierror.Error) {
	switch f := phi.(type) {
	case Predicate:
		if f.Name == "" {
			*result = multierror.Append(*result, &WellFormedError{
				Path: path + "Predicate", Reason: "predicate name must be non-empty",
			})
		}
		for i, a := range f.Args {
			checkTermWellFormed(a, fmt.Sprintf("%sPredicate(%s).Args[%d]", path, f.Name, i), result)
		}
	case Not:
		checkFormulaWellFormed(f.Formula, path+"Not.", result)
	case And:
		checkFormulaWellFormed(f.Left, path+"And.Left.", result)
		checkFormulaWellFormed(f.Right, path+"And.Right.", result)
	case Or:
		checkFormulaWellFormed(f.Left, path+"Or.Left.", result)
		checkFormulaWellFormed(f.Right, path+"Or.Right.", result)
	case Implies:
		checkFormulaWellFormed(f.Left, path+"Implies.Left.", result)
		checkFormulaWellFormed(f.Right, path+"Implies.Right.", result)
	case Forall:
		if f.Var.Name == "" {
			*result = multierror.Append(*result, &WellFormedError{
				Path: path + "Forall.Var", Reason: "bound variable must have a non-empty name",
			})
		}
		checkFormulaWellFormed(f.Body, path+"Forall.Body.", result)
	case Exists:
		if f.Var.Name == "" {
			*result = multierror.Append(*result, &WellFormedError{
				Path: path + "Exists.Var", Reason: "bound variable must have a non-empty name",
			})
		}
		checkFormulaWellFormed(f.Body, path+"Exists.Body.", result)
	default:
		*result = multierror.Append(*result, &WellFormedError{
			Path: path, Reason: fmt.Sprintf("unrecognized formula variant %T", phi),
		})
	}
}

func checkTermWellFormed(t Term, path string, result **multierror.Error) {
	switch tv := t.(type) {
	case Variable:
		if tv.Name == "" {
			*result = multierror.Append(*result, &WellFormedError{Path: path, Reason: "variable name must be non-empty"})
		}
	case Metavariable:
		if tv.Name == "" {
			*result = multierror.Append(*result, &WellFormedError{Path: path, Reason: "metavariable name must be non-empty"})
		}
	case Function:
		if tv.Name == "" {
			*result = multierror.Append(*result, &WellFormedError{Path: path, Reason: "function name must be non-empty"})
		}
		for i, a := range tv.Args {
			checkTermWellFormed(a, fmt.Sprintf("%s.Args[%d]", path, i), result)
		}
	default:
		*result = multierror.Append(*result, &WellFormedError{Path: path, Reason: fmt.Sprintf("unrecognized term variant %T", t)})
	}
}
