package prover

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrDiverges is returned by Prove/ProveOrDisprove when a non-zero
// WithStepBudget is exhausted before the search terminates. The prover
// is a semi-decision procedure (spec §1 Non-goals: "Not a decision
// procedure — it's a search that may run forever on a non-theorem that
// also isn't refutable"), so this is a caller-opt-in bound, not
// something the search itself ever checks.
var ErrDiverges = errors.New("prover: search did not terminate within the step budget")

// Verdict is the three-way result of ProveOrDisprove (spec §4.4).
type Verdict int

const (
	// VerdictIndependent means neither the goal nor its negation was
	// proven within the step budget (or, with no budget, the search was
	// cancelled) — the goal is independent of the axioms, or the search
	// simply hasn't found an answer yet.
	VerdictIndependent Verdict = iota
	// VerdictProven means the goal itself was proven.
	VerdictProven
	// VerdictRefuted means the goal's negation was proven.
	VerdictRefuted
)

func (v Verdict) String() string {
	switch v {
	case VerdictProven:
		return "proven"
	case VerdictRefuted:
		return "refuted"
	default:
		return "independent"
	}
}

// validateInputs runs CheckWellFormed over every axiom and the goal,
// aggregating every failure into one error (spec §7 kind 4: "malformed
// input — rejected before search begins, not discovered mid-search").
func validateInputs(axioms []Formula, goal Formula) error {
	var result *multierror.Error
	for i, a := range axioms {
		if err := CheckWellFormed(a); err != nil {
			result = multierror.Append(result, fmt.Errorf("axioms[%s]: %w", itoa(i), err))
		}
	}
	if err := CheckWellFormed(goal); err != nil {
		result = multierror.Append(result, fmt.Errorf("goal: %w", err))
	}
	return result.ErrorOrNil()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

// Prove constructs the root sequent {axiom_1:0, …, axiom_n:0} ⊢ {goal:0}
// and drives a single Engine to completion (spec §4.4: "prove constructs
// the root sequent... then invokes the engine"). It returns true if the
// goal was proven, false if the search got stuck with open branches
// remaining, and a non-nil error only for malformed input, context
// cancellation, or step-budget exhaustion.
func Prove(ctx context.Context, axioms []Formula, goal Formula, opts ...Option) (bool, error) {
	o := newOptions(opts...)
	if err := validateInputs(axioms, goal); err != nil {
		return false, err
	}

	eng := NewEngine(NewInitialSequent(axioms, goal), o.logger, o.trace)
	steps := 0
	for {
		res, err := eng.Step(ctx)
		if err != nil {
			return false, err
		}
		switch res {
		case StepProven:
			return true, nil
		case StepStuck:
			return false, nil
		}
		steps++
		if o.stepBudget > 0 && steps >= o.stepBudget {
			return false, ErrDiverges
		}
	}
}

// ProveOrDisprove runs two engines — one searching for the goal, one for
// its negation — in a cooperative, fair, single-threaded interleave
// (spec §4.4: "each step drives one engine by a bounded amount of work...
// then yields to the other"), grounded on original_source/rules.py's
// two-generator proveOrDisproveFormula pattern (there implemented with
// Python generators; here with two Engines stepped alternately). The
// first engine to report StepProven decides the verdict; if both get
// stuck, the goal is independent of the axioms.
func ProveOrDisprove(ctx context.Context, axioms []Formula, goal Formula, opts ...Option) (Verdict, error) {
	o := newOptions(opts...)
	if err := validateInputs(axioms, goal); err != nil {
		return VerdictIndependent, err
	}

	goalEngine := NewEngine(NewInitialSequent(axioms, goal), o.logger, o.trace)
	negEngine := NewEngine(NewInitialSequent(axioms, Not{Formula: goal}), o.logger, o.trace)

	goalAlive, negAlive := true, true
	steps := 0
	for goalAlive || negAlive {
		if goalAlive {
			res, err := goalEngine.Step(ctx)
			if err != nil {
				return VerdictIndependent, err
			}
			switch res {
			case StepProven:
				return VerdictProven, nil
			case StepStuck:
				goalAlive = false
			}
		}
		if negAlive {
			res, err := negEngine.Step(ctx)
			if err != nil {
				return VerdictIndependent, err
			}
			switch res {
			case StepProven:
				return VerdictRefuted, nil
			case StepStuck:
				negAlive = false
			}
		}

		steps++
		if o.stepBudget > 0 && steps >= o.stepBudget {
			return VerdictIndependent, ErrDiverges
		}
	}
	return VerdictIndependent, nil
}
