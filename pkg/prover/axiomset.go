package prover

import "context"

// AxiomSet is a mutable, deduplicated collection of axioms owned by a
// caller across many Prove/ProveOrDisprove calls (spec §6: the core
// exposes "add_axiom(φ) / remove_axiom(φ) on an owned axiom set", so a
// collaborator like a CLI or REPL can build up a theory incrementally
// rather than passing the full axiom list on every call). Membership is
// keyed on structural equality (StableHash), so adding the same formula
// twice is a no-op.
type AxiomSet struct {
	byHash map[string]Formula
	order  []string
}

// NewAxiomSet returns an empty axiom set.
func NewAxiomSet() *AxiomSet {
	return &AxiomSet{byHash: make(map[string]Formula)}
}

// Add inserts phi, rejecting it if it's not well-formed (spec §7 kind 4).
// Re-adding a structurally equal formula is a harmless no-op.
func (s *AxiomSet) Add(phi Formula) error {
	if err := CheckWellFormed(phi); err != nil {
		return err
	}
	h := StableHash(phi)
	if _, ok := s.byHash[h]; !ok {
		s.byHash[h] = phi
		s.order = append(s.order, h)
	}
	return nil
}

// Remove deletes phi from the set, if present. Removing a formula that
// was never added is a no-op.
func (s *AxiomSet) Remove(phi Formula) {
	h := StableHash(phi)
	if _, ok := s.byHash[h]; !ok {
		return
	}
	delete(s.byHash, h)
	for i, k := range s.order {
		if k == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// List returns the set's axioms in insertion order.
func (s *AxiomSet) List() []Formula {
	out := make([]Formula, len(s.order))
	for i, h := range s.order {
		out[i] = s.byHash[h]
	}
	return out
}

// Len reports how many axioms are currently in the set.
func (s *AxiomSet) Len() int { return len(s.order) }

// Prove is a convenience wrapper around the package-level Prove using
// this set's current axioms.
func (s *AxiomSet) Prove(ctx context.Context, goal Formula, opts ...Option) (bool, error) {
	return Prove(ctx, s.List(), goal, opts...)
}

// ProveOrDisprove is a convenience wrapper around the package-level
// ProveOrDisprove using this set's current axioms.
func (s *AxiomSet) ProveOrDisprove(ctx context.Context, goal Formula, opts ...Option) (Verdict, error) {
	return ProveOrDisprove(ctx, s.List(), goal, opts...)
}
