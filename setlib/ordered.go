package setlib

import (
	"cmp"
	"slices"
)

// OrderedSet is a collection of unique elements iterated in natural order.
// The zero value is an empty set ready for use.
type OrderedSet[T cmp.Ordered] struct {
	vv []T // sorted, unique
}

func NewOrderedSet[T cmp.Ordered](vv ...T) *OrderedSet[T] {
	return OrderedFromSlice(vv)
}

// OrderedFromSlice dedups s and sorts it by natural ordering. The input is
// not modified.
func OrderedFromSlice[S ~[]T, T cmp.Ordered](s S) *OrderedSet[T] {
	vv := make([]T, len(s))
	copy(vv, s)
	slices.Sort(vv)
	return &OrderedSet[T]{vv: slices.Compact(vv)}
}

func (s *OrderedSet[T]) Len() int {
	return len(s.vv)
}

// Values returns the elements in sorted order as a fresh slice.
func (s *OrderedSet[T]) Values() []T {
	vv := make([]T, len(s.vv))
	copy(vv, s.vv)
	return vv
}

func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := slices.BinarySearch(s.vv, v)
	return ok
}

func (s *OrderedSet[T]) Add(v T) {
	i, ok := slices.BinarySearch(s.vv, v)
	if ok {
		return
	}
	s.vv = slices.Insert(s.vv, i, v)
}

func (s *OrderedSet[T]) Del(v T) {
	i, ok := slices.BinarySearch(s.vv, v)
	if !ok {
		return
	}
	s.vv = slices.Delete(s.vv, i, i+1)
}

// Intersect returns a fresh set holding the elements present in both s and
// other. Both element sequences are already sorted, so a single merge walk
// over the two suffices.
func (s *OrderedSet[T]) Intersect(other *OrderedSet[T]) *OrderedSet[T] {
	ret := &OrderedSet[T]{}
	var i, j int
	for i < len(s.vv) && j < len(other.vv) {
		switch {
		case s.vv[i] < other.vv[j]:
			i++
		case s.vv[i] > other.vv[j]:
			j++
		default:
			ret.vv = append(ret.vv, s.vv[i])
			i++
			j++
		}
	}
	return ret
}

// Equal reports whether s and other hold the same elements.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	return slices.Equal(s.vv, other.vv)
}
