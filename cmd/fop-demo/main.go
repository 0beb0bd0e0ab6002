// Package main demonstrates the prover's core API against a handful of
// worked first-order theorems.
package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gitrdm/fop/pkg/prover"
)

func main() {
	fmt.Println("=== First-Order Prover Examples ===")
	fmt.Println()

	socratesSyllogism()
	existentialWitness()
	disjunctiveAxiom()
	unsatisfiableGoal()
	refutationByNegation()
	independentGoal()
	tracedSearch()
}

// socratesSyllogism proves the textbook universal-instantiation theorem:
// every man is mortal, Socrates is a man, therefore Socrates is mortal.
func socratesSyllogism() {
	fmt.Println("1. Universal Instantiation (Socrates is mortal):")

	x := prover.NewVariable("x")
	socrates := prover.NewFunction("socrates")
	axiom := prover.Forall{Var: x, Body: prover.Implies{
		Left:  prover.NewPredicate("Man", x),
		Right: prover.NewPredicate("Mortal", x),
	}}
	axioms := []prover.Formula{axiom, prover.NewPredicate("Man", socrates)}
	goal := prover.NewPredicate("Mortal", socrates)

	proven, err := prover.Prove(context.Background(), axioms, goal)
	fmt.Printf("   Man(socrates), ∀x.(Man(x) → Mortal(x)) ⊢ Mortal(socrates) => %v (err=%v)\n", proven, err)
	fmt.Println()
}

// existentialWitness proves that a universally-quantified property
// implies its existential closure.
func existentialWitness() {
	fmt.Println("2. Existential Witness:")

	x := prover.NewVariable("x")
	axiom := prover.Forall{Var: x, Body: prover.NewPredicate("P", x)}
	goal := prover.Exists{Var: x, Body: prover.NewPredicate("P", x)}

	proven, err := prover.Prove(context.Background(), []prover.Formula{axiom}, goal)
	fmt.Printf("   ∀x.P(x) ⊢ ∃x.P(x) => %v (err=%v)\n", proven, err)
	fmt.Println()
}

// disjunctiveAxiom shows a branching proof: splitting the disjunctive
// axiom yields two branches, each closed by its own disjunct.
func disjunctiveAxiom() {
	fmt.Println("3. Disjunction Elimination:")

	a := prover.NewFunction("a")
	axiom := prover.Or{Left: prover.NewPredicate("P", a), Right: prover.NewPredicate("Q", a)}
	goal := prover.Or{Left: prover.NewPredicate("Q", a), Right: prover.NewPredicate("P", a)}

	proven, err := prover.Prove(context.Background(), []prover.Formula{axiom}, goal)
	fmt.Printf("   P(a) ∨ Q(a) ⊢ Q(a) ∨ P(a) => %v (err=%v)\n", proven, err)
	fmt.Println()
}

// unsatisfiableGoal shows the search getting stuck on a goal that does
// not follow from the axioms.
func unsatisfiableGoal() {
	fmt.Println("4. Unrelated Goal (search gets stuck):")

	a := prover.NewFunction("a")
	axioms := []prover.Formula{prover.NewPredicate("P", a)}
	goal := prover.NewPredicate("Q", a)

	proven, err := prover.Prove(context.Background(), axioms, goal, prover.WithStepBudget(200))
	fmt.Printf("   P(a) ⊢ Q(a) => %v (err=%v)\n", proven, err)
	fmt.Println()
}

// refutationByNegation uses ProveOrDisprove to show a goal is refuted by
// its axioms rather than proven.
func refutationByNegation() {
	fmt.Println("5. Refutation (ProveOrDisprove):")

	a := prover.NewFunction("a")
	p := prover.NewPredicate("P", a)
	axioms := []prover.Formula{prover.Not{Formula: p}}

	verdict, err := prover.ProveOrDisprove(context.Background(), axioms, p, prover.WithStepBudget(200))
	fmt.Printf("   ¬P(a) ⊢? P(a) => %s (err=%v)\n", verdict, err)
	fmt.Println()
}

// independentGoal shows ProveOrDisprove settling on "independent" when
// neither the goal nor its negation follows from the axioms within the
// step budget.
func independentGoal() {
	fmt.Println("6. Independence (ProveOrDisprove):")

	a := prover.NewFunction("a")
	axioms := []prover.Formula{prover.NewPredicate("P", a)}
	goal := prover.NewPredicate("Q", a)

	verdict, err := prover.ProveOrDisprove(context.Background(), axioms, goal, prover.WithStepBudget(200))
	fmt.Printf("   P(a) ⊢? Q(a) => %s (err=%v)\n", verdict, err)
	fmt.Println()
}

// tracedSearch demonstrates the structured-logging and TraceStream hooks
// a caller can attach to watch the search proceed.
func tracedSearch() {
	fmt.Println("7. Traced Search:")

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	trace := prover.NewTraceStream(32)

	x := prover.NewVariable("x")
	socrates := prover.NewFunction("socrates")
	axiom := prover.Forall{Var: x, Body: prover.Implies{
		Left:  prover.NewPredicate("Man", x),
		Right: prover.NewPredicate("Mortal", x),
	}}
	axioms := []prover.Formula{axiom, prover.NewPredicate("Man", socrates)}
	goal := prover.NewPredicate("Mortal", socrates)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range trace.Events() {
			fmt.Printf("   [trace] kind=%d sequent=%q\n", ev.Kind, ev.Sequent)
		}
	}()

	start := time.Now()
	proven, err := prover.Prove(context.Background(), axioms, goal,
		prover.WithLogger(logger.Sugar()),
		prover.WithTrace(trace),
	)
	trace.Close()
	<-done

	fmt.Printf("   proven=%v err=%v elapsed=%v events=%d\n", proven, err, time.Since(start), trace.Count())
	fmt.Println()
}
