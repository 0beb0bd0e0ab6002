package groupset

import "testing"

func TestNewGroupStartsEmpty(t *testing.T) {
	s := New()
	g := s.NewGroup()
	if s.Len(g) != 0 {
		t.Errorf("expected a fresh group to be empty, got length %d", s.Len(g))
	}
}

func TestAddGrowsGroupMonotonically(t *testing.T) {
	s := New()
	g := s.NewGroup()
	s.Add(g, 1)
	s.Add(g, 2)
	s.Add(g, 2) // duplicate add is a no-op
	if got := s.Len(g); got != 2 {
		t.Errorf("expected 2 members, got %d", got)
	}
}

func TestRemoveDropsMember(t *testing.T) {
	s := New()
	g := s.NewGroup()
	s.Add(g, 1)
	s.Add(g, 2)
	s.Remove(g, 1)
	members := s.Members(g)
	if len(members) != 1 || members[0] != 2 {
		t.Errorf("expected only member 2 to remain, got %v", members)
	}
}

func TestNilIsDistinctFromAnyAllocatedGroup(t *testing.T) {
	s := New()
	g := s.NewGroup()
	if g == Nil {
		t.Errorf("expected a freshly allocated group id to differ from Nil")
	}
}

func TestTwoGroupsDoNotCollide(t *testing.T) {
	s := New()
	a := s.NewGroup()
	b := s.NewGroup()
	s.Add(a, 1)
	s.Add(b, 1)
	if s.Len(a) != 1 || s.Len(b) != 1 {
		t.Errorf("expected independent membership per group")
	}
}
