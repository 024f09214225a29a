// SPDX-License-Identifier: MPL-2.0

package objset

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the sentinel error wrapped by IndexOutOfRangeError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

type (
	// Set holds references of type T. T must be comparable; for pointer types
	// equality is pointer identity, which is the intended use.
	//
	// The zero value is an empty set ready for use.
	Set[T comparable] struct {
		items []T
	}

	// IndexOutOfRangeError is returned when a removal index does not address
	// an occupied slot. It wraps ErrIndexOutOfRange for errors.Is() compatibility.
	IndexOutOfRangeError struct {
		Index int
		Len   int
	}
)

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for set of %d element(s)", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is() compatibility.
func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// New creates an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Len returns the number of occupied slots.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Cap returns the number of allocated slots.
func (s *Set[T]) Cap() int {
	return cap(s.items)
}

// Add inserts v into the set and returns its index.
//
// With allowDup false the set is deduplicating: if v is already present, the
// index of the existing entry is returned and the set is not mutated. With
// allowDup true no duplicate check is performed and the set behaves as a
// plain list. Appends are amortized constant time.
func (s *Set[T]) Add(v T, allowDup bool) int {
	if !allowDup {
		if i, ok := s.Contains(v); ok {
			return i
		}
	}
	s.items = append(s.items, v)
	return len(s.items) - 1
}

// Contains scans for v by equality and returns its index, or false when the
// set does not hold v.
func (s *Set[T]) Contains(v T) (int, bool) {
	for i := range s.items {
		if s.items[i] == v {
			return i, true
		}
	}
	return 0, false
}

// Merge adds every entry of src into s, honoring allowDup exactly as Add
// does, and returns the number of entries actually appended (suppressed
// duplicates do not count). src is drained: its entries are removed but its
// storage is kept for reuse, and the referenced objects are untouched.
func (s *Set[T]) Merge(src *Set[T], allowDup bool) int {
	if src == nil {
		return 0
	}
	added := 0
	before := 0
	for _, v := range src.items {
		before = s.Len()
		s.Add(v, allowDup)
		if s.Len() > before {
			added++
		}
	}
	src.Clean()
	return added
}

// Remove deletes v from the set if present; removing an absent element is a
// no-op. The last element is swapped into the vacated slot, so indexes of
// other entries may change.
func (s *Set[T]) Remove(v T) {
	if i, ok := s.Contains(v); ok {
		s.removeAt(i)
	}
}

// RemoveAt deletes the element at index i with the same swap-with-last
// semantics as Remove. An index outside [0, Len) is an error.
func (s *Set[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(s.items) {
		return &IndexOutOfRangeError{Index: i, Len: len(s.items)}
	}
	s.removeAt(i)
	return nil
}

func (s *Set[T]) removeAt(i int) {
	last := len(s.items) - 1
	if i != last {
		s.items[i] = s.items[last]
	}
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
}

// Clean removes all entries but keeps the allocated storage for reuse.
// Referenced objects are never touched.
func (s *Set[T]) Clean() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

// Duplicate returns a new set holding the same references. The copy is
// shallow: same pointees, independent container.
func (s *Set[T]) Duplicate() *Set[T] {
	dup := &Set[T]{items: make([]T, len(s.items), cap(s.items))}
	copy(dup.items, s.items)
	return dup
}

// Items returns a copy of the occupied slots in their current order.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the element at index i. An index outside [0, Len) is an error.
func (s *Set[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, &IndexOutOfRangeError{Index: i, Len: len(s.items)}
	}
	return s.items[i], nil
}
