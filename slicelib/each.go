package slicelib

// ForEach applies block to every element in order. The element is passed by
// value; use ForEachPtr to mutate in place.
func ForEach[T any](arr []T, block func(it T)) {
	for _, it := range arr {
		block(it)
	}
}

// ForEachPtr applies block to every element in order, handing it a pointer
// into the backing array. The pointer must not be retained after block
// returns.
func ForEachPtr[T any](arr []T, block func(it *T)) {
	for index := range arr {
		block(&arr[index])
	}
}
