// Package groupset implements the shared mutable "sibling group" arena
// described in spec.md design note 9.2: a sibling group is a set of
// sequents (addressed by the engine's own integer sequent ids) that must
// be closed by a single simultaneous unifier, because they share
// metavariables introduced by a common ancestor (spec §3 invariant 9,
// §4.3's "simultaneous sibling closure").
//
// Groups are addressed by uuid.UUID rather than a process-local counter
// so that two searches running in the same process (the prover driver's
// goal/negation interleave) never collide on group identity even though
// each runs its own engine and sequent-id space.
package groupset

import "github.com/google/uuid"

// ID identifies one sibling group.
type ID uuid.UUID

// Nil is the zero ID, used to represent "no group" without an
// additional pointer/bool pair at call sites that already treat the
// zero value as absent.
var Nil ID

// String renders the group id for debug tracing.
func (id ID) String() string { return uuid.UUID(id).String() }

// Set is the arena: a registry of sibling groups, each a mutable set of
// member sequent ids. It is not safe for concurrent use from multiple
// goroutines without external synchronization — per spec §5, the core
// engine is single-threaded, so the only sharing that matters is by
// reference across sequents within one search.
type Set struct {
	groups map[ID]map[int]struct{}
}

// New returns an empty arena.
func New() *Set {
	return &Set{groups: make(map[ID]map[int]struct{})}
}

// NewGroup allocates a fresh, empty sibling group and returns its id.
func (s *Set) NewGroup() ID {
	id := ID(uuid.New())
	s.groups[id] = make(map[int]struct{})
	return id
}

// Add inserts sequentID into the group, growing it monotonically (spec
// §3 invariant 9: "every sequent produced while a sibling group is alive
// is added to the same group").
func (s *Set) Add(group ID, sequentID int) {
	members, ok := s.groups[group]
	if !ok {
		members = make(map[int]struct{})
		s.groups[group] = members
	}
	members[sequentID] = struct{}{}
}

// Remove drops sequentID from the group, e.g. when a sequent is found
// axiomatically closed on its own or the whole group closes at once.
func (s *Set) Remove(group ID, sequentID int) {
	if members, ok := s.groups[group]; ok {
		delete(members, sequentID)
	}
}

// Members returns the current member sequent ids of group, in no
// particular order.
func (s *Set) Members(group ID) []int {
	members := s.groups[group]
	out := make([]int, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	return out
}

// Len reports the current size of group.
func (s *Set) Len(group ID) int { return len(s.groups[group]) }
