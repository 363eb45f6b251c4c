package slicelib

import "github.com/qtraffics/qtcoll/values"

// Any reports whether at least one element is non-default.
// An empty slice yields false.
func Any[T comparable](arr []T) bool {
	for _, it := range arr {
		if !values.IsZero(it) {
			return true
		}
	}
	return false
}

// All reports whether every element is non-default.
// An empty slice yields true.
func All[T comparable](arr []T) bool {
	for _, it := range arr {
		if values.IsZero(it) {
			return false
		}
	}
	return true
}

// Contains reports whether v equals an element of arr. First match wins.
func Contains[S ~[]T, T comparable](arr S, v T) bool {
	for _, it := range arr {
		if it == v {
			return true
		}
	}
	return false
}

func ContainsFunc[T any](arr []T, block func(it T) bool) bool {
	for _, it := range arr {
		if block(it) {
			return true
		}
	}
	return false
}
