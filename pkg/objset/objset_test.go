// SPDX-License-Identifier: MPL-2.0

package objset

import (
	"errors"
	"testing"
)

type node struct{ name string }

func TestSet_AddDedup(t *testing.T) {
	t.Parallel()

	a, b := &node{"a"}, &node{"b"}
	s := New[*node]()

	if got := s.Add(a, false); got != 0 {
		t.Errorf("Add(a) = %d, want 0", got)
	}
	if got := s.Add(b, false); got != 1 {
		t.Errorf("Add(b) = %d, want 1", got)
	}
	// Re-adding an existing reference returns the original index without
	// changing the count.
	if got := s.Add(a, false); got != 0 {
		t.Errorf("Add(a) again = %d, want 0", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSet_AddListMode(t *testing.T) {
	t.Parallel()

	a := &node{"a"}
	s := New[*node]()

	for i := 0; i < 3; i++ {
		if got := s.Add(a, true); got != i {
			t.Errorf("Add #%d = %d, want %d", i, got, i)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_OrderUntilRemoval(t *testing.T) {
	t.Parallel()

	nodes := []*node{{"a"}, {"b"}, {"c"}, {"d"}}
	s := New[*node]()
	for _, n := range nodes {
		s.Add(n, false)
	}

	for i, n := range nodes {
		got, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != n {
			t.Errorf("At(%d) = %q, want %q", i, got.name, n.name)
		}
	}
}

func TestSet_Contains(t *testing.T) {
	t.Parallel()

	a, b, missing := &node{"a"}, &node{"b"}, &node{"x"}
	s := New[*node]()
	s.Add(a, false)
	s.Add(b, false)

	if i, ok := s.Contains(b); !ok || i != 1 {
		t.Errorf("Contains(b) = (%d, %v), want (1, true)", i, ok)
	}
	if _, ok := s.Contains(missing); ok {
		t.Error("Contains(missing) = true, want false")
	}
}

func TestSet_SwapRemoval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		removeIdx int
		wantOrder []string
	}{
		{"first", 0, []string{"d", "b", "c"}},
		{"middle", 1, []string{"a", "d", "c"}},
		{"last", 3, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New[*node]()
			byName := map[string]*node{}
			for _, name := range []string{"a", "b", "c", "d"} {
				n := &node{name}
				byName[name] = n
				s.Add(n, false)
			}

			if err := s.RemoveAt(tt.removeIdx); err != nil {
				t.Fatalf("RemoveAt(%d): %v", tt.removeIdx, err)
			}
			if s.Len() != 3 {
				t.Fatalf("Len() = %d, want 3", s.Len())
			}
			for i, want := range tt.wantOrder {
				got, err := s.At(i)
				if err != nil {
					t.Fatalf("At(%d): %v", i, err)
				}
				if got != byName[want] {
					t.Errorf("At(%d) = %q, want %q", i, got.name, want)
				}
			}
		})
	}
}

func TestSet_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	a := &node{"a"}
	s := New[*node]()
	s.Add(a, false)

	s.Remove(&node{"ghost"})
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSet_RemoveAtOutOfRange(t *testing.T) {
	t.Parallel()

	s := New[*node]()
	s.Add(&node{"a"}, false)

	for _, idx := range []int{-1, 1, 42} {
		err := s.RemoveAt(idx)
		if err == nil {
			t.Errorf("RemoveAt(%d) = nil, want error", idx)
			continue
		}
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(%d) error should wrap ErrIndexOutOfRange, got: %v", idx, err)
		}
	}
}

func TestSet_Merge(t *testing.T) {
	t.Parallel()

	a, b, c := &node{"a"}, &node{"b"}, &node{"c"}

	trg := New[*node]()
	trg.Add(a, false)
	trg.Add(b, false)

	src := New[*node]()
	src.Add(b, false)
	src.Add(c, false)

	added := trg.Merge(src, false)
	if added != 1 {
		t.Errorf("Merge added = %d, want 1", added)
	}
	// Every reference that was in src is now reachable in trg.
	for _, n := range []*node{b, c} {
		if _, ok := trg.Contains(n); !ok {
			t.Errorf("Contains(%q) = false after merge, want true", n.name)
		}
	}
	if src.Len() != 0 {
		t.Errorf("source Len() = %d after merge, want 0", src.Len())
	}
}

func TestSet_MergeListMode(t *testing.T) {
	t.Parallel()

	a := &node{"a"}
	trg := New[*node]()
	trg.Add(a, true)

	src := New[*node]()
	src.Add(a, true)
	src.Add(a, true)

	if added := trg.Merge(src, true); added != 2 {
		t.Errorf("Merge added = %d, want 2", added)
	}
	if trg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", trg.Len())
	}
}

func TestSet_CleanKeepsCapacity(t *testing.T) {
	t.Parallel()

	s := New[*node]()
	for i := 0; i < 8; i++ {
		s.Add(&node{}, true)
	}
	capBefore := s.Cap()

	s.Clean()
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Clean, want 0", s.Len())
	}
	if s.Cap() != capBefore {
		t.Errorf("Cap() = %d after Clean, want %d", s.Cap(), capBefore)
	}

	// Container stays usable.
	if got := s.Add(&node{"again"}, false); got != 0 {
		t.Errorf("Add after Clean = %d, want 0", got)
	}
}

func TestSet_Duplicate(t *testing.T) {
	t.Parallel()

	a, b := &node{"a"}, &node{"b"}
	s := New[*node]()
	s.Add(a, false)
	s.Add(b, false)

	dup := s.Duplicate()
	if dup.Len() != s.Len() {
		t.Fatalf("duplicate Len() = %d, want %d", dup.Len(), s.Len())
	}
	// Same pointees, independent container.
	got, err := dup.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}
	if got != a {
		t.Error("duplicate does not share pointees with the original")
	}
	dup.Remove(a)
	if s.Len() != 2 {
		t.Error("removing from the duplicate mutated the original")
	}
}

func TestSet_ZeroValueUsable(t *testing.T) {
	t.Parallel()

	var s Set[*node]
	if got := s.Add(&node{"a"}, false); got != 0 {
		t.Errorf("Add on zero value = %d, want 0", got)
	}
}
