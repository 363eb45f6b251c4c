package maplib

// ForEachKey applies block to every key, order unspecified. Map keys are not
// addressable, so the pointer targets a per-iteration copy: block may mutate
// it freely without touching the map structure, and must not retain it after
// returning.
func ForEachKey[K comparable, V any](m map[K]V, block func(k *K)) {
	for k := range m {
		k := k
		block(&k)
	}
}

// ForEachPair applies block to every entry, order unspecified. The key
// pointer targets a copy as in ForEachKey; the value is stored back after
// block returns, so value mutations persist in m.
func ForEachPair[K comparable, V any](m map[K]V, block func(k *K, v *V)) {
	for k := range m {
		kk := k
		v := m[k]
		block(&kk, &v)
		m[k] = v
	}
}
