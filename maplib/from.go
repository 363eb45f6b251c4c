package maplib

// IndexMap maps every element of s to the index of its first occurrence.
func IndexMap[S ~[]E, E comparable](s S) map[E]int {
	ret := make(map[E]int)

	for i, v := range s {
		if _, ok := ret[v]; ok {
			continue
		}
		ret[v] = i
	}
	return ret
}

// FromSliceFunc builds a map keyed by fn(value). When two elements derive the
// same key, the first one in slice order is kept and the rest are silently
// dropped.
func FromSliceFunc[K comparable, S ~[]E, E any](s S, fn func(value E) K) map[K]E {
	if len(s) == 0 {
		return make(map[K]E)
	}

	ret := make(map[K]E, len(s))

	for _, v := range s {
		k := fn(v)
		if _, ok := ret[k]; ok {
			continue
		}
		ret[k] = v
	}
	return ret
}
