package maplib

import "github.com/qtraffics/qtcoll/ex"

var (
	ErrSizeMismatch   = ex.New("maps do not have the same number of elements")
	ErrKeySetMismatch = ex.New("keysets of the maps do not match")
)

// Combine merges m1 and m2 pointwise by key. The key sets of the two maps
// must be identical: a length mismatch fails immediately with
// ErrSizeMismatch, a key of m1 absent from m2 fails with ErrKeySetMismatch
// when it is reached.
func Combine[K comparable, V1 any, V2 any, R any](m1 map[K]V1, m2 map[K]V2, block func(v1 V1, v2 V2) R) (map[K]R, error) {
	if len(m1) != len(m2) {
		return nil, ErrSizeMismatch
	}

	ret := make(map[K]R, len(m1))
	for k, v1 := range m1 {
		v2, ok := m2[k]
		if !ok {
			return nil, ErrKeySetMismatch
		}
		ret[k] = block(v1, v2)
	}
	return ret, nil
}
