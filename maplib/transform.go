package maplib

import "github.com/qtraffics/qtcoll/setlib"

// MapValues replaces every value with block(value), keeping the key set.
func MapValues[K comparable, V any, N any](m map[K]V, block func(it V) N) map[K]N {
	ret := make(map[K]N, len(m))
	for k, v := range m {
		ret[k] = block(v)
	}
	return ret
}

// Filter keeps the entries for which block(key, value) holds.
func Filter[K comparable, V any](m map[K]V, block func(k K, v V) bool) map[K]V {
	ret := make(map[K]V, len(m))
	for k, v := range m {
		if block(k, v) {
			ret[k] = v
		}
	}
	return ret
}

func FilterByKeys[K comparable, V any](m map[K]V, block func(k K) bool) map[K]V {
	return Filter(m, func(k K, _ V) bool {
		return block(k)
	})
}

// FilterByKeySet keeps the entries whose key is a member of keys.
func FilterByKeySet[K comparable, V any](m map[K]V, keys setlib.Set[K]) map[K]V {
	return FilterByKeys(m, keys.Contains)
}

func FilterByValues[K comparable, V any](m map[K]V, block func(v V) bool) map[K]V {
	return Filter(m, func(_ K, v V) bool {
		return block(v)
	})
}
