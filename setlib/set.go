package setlib

// Set is an unordered collection of unique elements. Iteration order is
// unspecified.
type Set[K comparable] map[K]bool

func NewSet[E comparable]() Set[E] {
	return make(Set[E])
}

// NewSetFromSlice dedups s into an unordered set.
func NewSetFromSlice[S ~[]E, E comparable](s S) Set[E] {
	set := make(Set[E], len(s))
	for i := 0; i < len(s); i++ {
		set.Add(s[i])
	}
	return set
}

func (s Set[K]) Add(k K) {
	s[k] = true
}

func (s Set[K]) Del(k K) {
	delete(s, k)
}

func (s Set[K]) Contains(k K) bool {
	_, ok := s[k]
	return ok
}

func (s Set[K]) ContainAll(S []K) bool {
	contain := true
	for i := 0; i < len(S) && contain; i++ {
		contain = s.Contains(S[i])
	}
	return contain
}

func (s Set[K]) Len() int {
	return len(s)
}

// Values extracts the elements into a fresh slice, order unspecified.
func (s Set[K]) Values() []K {
	vv := make([]K, 0, len(s))
	for k := range s {
		vv = append(vv, k)
	}
	return vv
}

// Intersect returns a fresh set holding the elements present in both s and
// other, probing s's elements against other.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	ret := NewSet[K]()
	for k := range s {
		if other.Contains(k) {
			ret.Add(k)
		}
	}
	return ret
}

// Union returns a fresh set holding the elements of s and other.
func (s Set[K]) Union(other Set[K]) Set[K] {
	ret := make(Set[K], len(s)+len(other))
	for k := range s {
		ret.Add(k)
	}
	for k := range other {
		ret.Add(k)
	}
	return ret
}

// Diff returns a fresh set holding the elements of s absent from other.
func (s Set[K]) Diff(other Set[K]) Set[K] {
	ret := NewSet[K]()
	for k := range s {
		if !other.Contains(k) {
			ret.Add(k)
		}
	}
	return ret
}
